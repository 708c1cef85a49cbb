package prism

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightColor(t *testing.T) {

	assert.Equal(t, uint32(0xffffff), NewLight("white", nil).Color.Hex())
	assert.Equal(t, uint32(0xff8800), NewLight("orange", 0xff8800).Color.Hex())
	assert.Equal(t, uint32(0x00ff00), NewLight("green", "#00ff00").Color.Hex())

	light := NewLight("lamp", nil)
	assert.True(t, light.On)
	assert.Equal(t, NodeTypeLight, light.Type())
	assert.True(t, light.Type().Is(NodeTypeLight))
	assert.Same(t, light, light.LightBase())

}

func TestLightTypes(t *testing.T) {

	lights := []ILight{
		NewAmbientLight("amb", 1, 1, 1, 0.5),
		NewPointLight("point", 1, 1, 1, 2),
		NewDirectionalLight("sun", 1, 1, 1, 1),
		NewAreaLight("area", nil, 0),
	}

	expected := []NodeType{NodeTypeAmbientLight, NodeTypePointLight, NodeTypeDirectionalLight, NodeTypeAreaLight}

	for i, light := range lights {
		assert.Equal(t, expected[i], light.Type())
		assert.True(t, light.Type().Is(NodeTypeLight))
		assert.False(t, NodeTypeLight.Is(light.Type()))
	}

}

func TestAreaLightDefaults(t *testing.T) {

	area := NewAreaLight("panel", 0xffeedd, 0)

	assert.Equal(t, uint32(0xffeedd), area.Color.Hex())
	assert.Equal(t, 1.0, area.Intensity)
	assert.Equal(t, NewVector(0, -1, 0), area.Normal)
	assert.Equal(t, NewVector(1, 0, 0), area.Right)
	assert.Equal(t, 1.0, area.Width)
	assert.Equal(t, 1.0, area.Height)
	assert.Equal(t, 1.5, area.ConstantAttenuation)
	assert.Equal(t, 0.5, area.LinearAttenuation)
	assert.Equal(t, 0.1, area.QuadraticAttenuation)

	assert.Equal(t, 3.0, NewAreaLight("bright", nil, 3).Intensity)
	assert.InDelta(t, 1/1.5, area.Attenuation(0), 1e-9)
	assert.InDelta(t, 1/(1.5+0.5*2+0.1*4), area.Attenuation(2), 1e-9)

}

func TestAreaLightCloneKeepsAreaFields(t *testing.T) {

	area := NewAreaLight("panel", 0x336699, 4)
	area.Normal = NewVector(0, 0, 1)
	area.Right = NewVector(0, 1, 0)
	area.Width = 2
	area.Height = 3
	area.QuadraticAttenuation = 0.25
	area.On = false
	area.SetLocalPosition(1, 2, 3)

	clone := area.Clone().(*AreaLight)

	assert.Equal(t, "panel", clone.Name())
	assert.NotEqual(t, area.ID(), clone.ID())
	assert.Equal(t, 4.0, clone.Intensity)
	assert.Equal(t, area.Normal, clone.Normal)
	assert.Equal(t, area.Right, clone.Right)
	assert.Equal(t, 6.0, clone.Area())
	assert.Equal(t, 0.25, clone.QuadraticAttenuation)
	assert.False(t, clone.On)
	assert.Equal(t, NewVector(1, 2, 3), clone.LocalPosition())

	assert.NotSame(t, area.Color, clone.Color)
	clone.Color.SetHex(0)
	assert.Equal(t, uint32(0x336699), area.Color.Hex())

	// A switched-off intensity survives cloning.
	area.Intensity = 0
	assert.Equal(t, 0.0, area.Clone().(*AreaLight).Intensity)

}

func TestLightCloneKeepsChildren(t *testing.T) {

	point := NewPointLight("bulb", 1, 0.5, 0, 3)
	point.Range = 10
	point.AddChildren(NewNode("socket"))

	cloned := 0
	point.Callbacks().OnClone = func(newNode INode) { cloned++ }

	clone := point.Clone().(*PointLight)

	assert.Equal(t, 1, cloned)
	assert.Equal(t, 10.0, clone.Range)
	assert.Equal(t, float32(3), clone.Energy)

	require.Len(t, clone.Children(), 1)
	socket := clone.Children()[0]
	assert.Equal(t, "socket", socket.Name())
	assert.Same(t, clone, socket.Parent())
	assert.NotSame(t, point.Children()[0], socket)

}

func TestDirectionalLightForward(t *testing.T) {

	sun := NewDirectionalLight("sun", 1, 1, 1, 1)
	assert.True(t, sun.Forward().Equals(NewVector(0, 0, -1)))

	sun.Rotate(0, 1, 0, math.Pi/2)
	assert.True(t, sun.Forward().Equals(NewVector(-1, 0, 0)), sun.Forward().String())

}
