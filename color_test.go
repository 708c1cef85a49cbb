package prism

import (
	"encoding/json"
	imgcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {

	c := NewColorFromHex(0x336699)
	assert.Equal(t, uint32(0x336699), c.Hex())
	assert.Equal(t, "336699", c.HexString())
	assert.Equal(t, float32(1), c.A)

	// Out-of-range components are clamped.
	assert.Equal(t, uint32(0xff0000), NewColor(2, -1, 0, 1).Hex())

	data, err := json.Marshal(c)
	assert.NoError(t, err)
	assert.Equal(t, "3368601", string(data))

}

func TestColorSetStyle(t *testing.T) {

	styles := map[string]uint32{
		"#f80":                0xff8800,
		"#FF8800":             0xff8800,
		"rgb(255, 136, 0)":    0xff8800,
		"rgb(100%, 0%, 50%)":  0xff0080,
		"hsl(120, 100%, 50%)": 0x00ff00,
		"skyblue":             0x87ceeb,
		"  White ":            0xffffff,
	}

	for style, hex := range styles {
		c := NewColor(0, 0, 0, 1)
		assert.True(t, c.SetStyle(style), style)
		assert.Equal(t, hex, c.Hex(), style)
	}

	c := NewColorFromHex(0x123456)
	for _, bad := range []string{"#12", "#gggggg", "rgb(1, 2)", "hsl(a, 1%, 1%)", "notacolor"} {
		assert.False(t, c.SetStyle(bad), bad)
	}
	assert.Equal(t, uint32(0x123456), c.Hex())

}

func TestColorSet(t *testing.T) {

	c := NewColor(0, 0, 0, 1)

	assert.True(t, c.Set(0x00ff00))
	assert.Equal(t, uint32(0x00ff00), c.Hex())

	assert.True(t, c.Set(NewColor(1, 0, 0, 0.5)))
	assert.Equal(t, uint32(0xff0000), c.Hex())
	assert.Equal(t, float32(0.5), c.A)

	assert.True(t, c.Set([]float64{0, 0, 1}))
	assert.Equal(t, uint32(0x0000ff), c.Hex())

	assert.True(t, c.Set(NewVector(1, 1, 0)))
	assert.Equal(t, uint32(0xffff00), c.Hex())

	assert.True(t, c.Set(imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}))
	assert.Equal(t, uint32(0xffffff), c.Hex())

	assert.False(t, c.Set(true))
	assert.False(t, c.Set([]float64{1}))
	assert.False(t, c.Set((*Color)(nil)))

}

func TestColorHSL(t *testing.T) {

	c := NewColor(0, 0, 0, 1).SetHSL(0.5, 1, 0.5)
	assert.Equal(t, uint32(0x00ffff), c.Hex())

	h, s, l := c.HSL()
	assert.InDelta(t, 0.5, h, 1e-5)
	assert.InDelta(t, 1, s, 1e-5)
	assert.InDelta(t, 0.5, l, 1e-5)

	_, s, l = NewColor(0.25, 0.25, 0.25, 1).HSL()
	assert.Zero(t, s)
	assert.InDelta(t, 0.25, l, 1e-6)

}

func TestColorLinearRoundTrip(t *testing.T) {

	c := NewColor(0.2, 0.5, 0.9, 1)
	c.ConvertToLinear()
	assert.Less(t, c.G, float32(0.5))
	c.ConvertTosRGB()

	assert.InDelta(t, 0.2, c.R, 1e-4)
	assert.InDelta(t, 0.5, c.G, 1e-4)
	assert.InDelta(t, 0.9, c.B, 1e-4)

}

func TestColorCloneAndCopy(t *testing.T) {

	var nilColor *Color
	assert.Nil(t, nilColor.Clone())

	c := NewColor(0.1, 0.2, 0.3, 0.4)
	clone := c.Clone()
	assert.NotSame(t, c, clone)
	assert.True(t, c.Equals(clone))

	clone.SetRGB(1, 1, 1)
	assert.False(t, c.Equals(clone))

	c.Copy(clone)
	assert.True(t, c.Equals(clone))

}
