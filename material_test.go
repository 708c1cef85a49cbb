package prism

import (
	"encoding/json"
	"testing"

	"github.com/solarlune/prism/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordLogs swaps the package logger for a Recorder for the duration of the test.
func recordLogs(t *testing.T) *logging.Recorder {
	t.Helper()
	prev := Log()
	rec := &logging.Recorder{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(prev) })
	return rec
}

func TestMaterialDefaults(t *testing.T) {

	base := NewMaterial()
	assert.Equal(t, FrontSide, base.Side)
	assert.Equal(t, 1.0, base.Opacity)
	assert.Equal(t, NormalBlending, base.Blending)
	assert.Equal(t, SrcAlphaFactor, base.BlendSrc)
	assert.Equal(t, OneMinusSrcAlphaFactor, base.BlendDst)
	assert.Equal(t, AddEquation, base.BlendEquation)
	assert.True(t, base.DepthTest)
	assert.True(t, base.DepthWrite)
	assert.True(t, base.Visible)
	assert.True(t, base.NeedsUpdate())
	assert.Nil(t, base.BlendSrcAlpha)
	assert.Equal(t, "Material", base.Type())

	phong := NewMeshPhongMaterial(nil)
	assert.Equal(t, uint32(0xffffff), phong.Color.Hex())
	assert.Equal(t, uint32(0x111111), phong.Specular.Hex())
	assert.Equal(t, uint32(0x000000), phong.Emissive.Hex())
	assert.Equal(t, 30.0, phong.Shininess)
	assert.Equal(t, NewVector2(1, 1), phong.NormalScale)
	assert.Equal(t, SmoothShading, phong.Shading)

	assert.Equal(t, FlatShading, NewMeshNormalMaterial(nil).Shading)
	assert.False(t, NewSpriteMaterial(nil).Fog)
	assert.True(t, NewPointCloudMaterial(nil).SizeAttenuation)

}

func TestMaterialIDsIncrease(t *testing.T) {

	materials := []IMaterial{
		NewMaterial(),
		NewMeshBasicMaterial(nil),
		NewShaderMaterial(nil),
		NewSpriteMaterial(nil),
	}

	uuids := map[string]bool{}

	for i := 1; i < len(materials); i++ {
		assert.Greater(t, materials[i].Base().ID(), materials[i-1].Base().ID())
	}

	for _, m := range materials {
		uuids[m.Base().UUID()] = true
	}
	assert.Len(t, uuids, len(materials))

	next := MaterialIDCount()
	assert.Equal(t, next, NewMeshDepthMaterial(nil).ID())

}

func TestSetValues(t *testing.T) {

	rec := recordLogs(t)

	m := NewMeshPhongMaterial(Values{
		"color":       0xff0000,
		"shininess":   12,
		"side":        "DoubleSide",
		"shading":     FlatShading,
		"opacity":     0.5,
		"transparent": true,
		"normalScale": NewVector2(2, 3),
		"wrapRGB":     NewVector(0.5, 0.5, 0.5),
		"doesntExist": 42,
	})

	assert.Equal(t, uint32(0xff0000), m.Color.Hex())
	assert.Equal(t, 12.0, m.Shininess)
	assert.Equal(t, DoubleSide, m.Side)
	assert.Equal(t, FlatShading, m.Shading)
	assert.Equal(t, 0.5, m.Opacity)
	assert.True(t, m.Transparent)
	assert.Equal(t, NewVector2(2, 3), m.NormalScale)
	assert.True(t, m.WrapRGB.Equals(NewVector(0.5, 0.5, 0.5)))

	// Unknown keys are silently ignored.
	assert.Zero(t, rec.Count())

}

func TestSetValuesIsIdempotent(t *testing.T) {

	patch := Values{"color": "#336699", "emissive": 0x101010, "wireframe": true, "alphaTest": 0.25}

	once := NewMeshLambertMaterial(patch)
	twice := NewMeshLambertMaterial(patch)
	twice.SetValues(patch)

	assert.Equal(t, once.Color, twice.Color)
	assert.Equal(t, once.Emissive, twice.Emissive)
	assert.Equal(t, once.Wireframe, twice.Wireframe)
	assert.Equal(t, once.AlphaTest, twice.AlphaTest)

}

func TestSetValuesColorIsMergedInPlace(t *testing.T) {

	m := NewMeshBasicMaterial(nil)
	color := m.Color

	other := NewColor(0, 1, 0, 1)
	m.SetValues(Values{"color": other})

	assert.Same(t, color, m.Color)
	assert.True(t, m.Color.Equals(other))

	// The source Color isn't shared.
	other.SetRGB(1, 1, 1)
	assert.Equal(t, uint32(0x00ff00), m.Color.Hex())

}

func TestSetValuesWarnings(t *testing.T) {

	rec := recordLogs(t)

	m := NewMeshBasicMaterial(Values{"opacity": Undefined})
	assert.Equal(t, 1.0, m.Opacity)
	require.Equal(t, 1, rec.Count())
	assert.Contains(t, rec.Lines[0], "'opacity' parameter is undefined")

	m.SetValues(Values{"reflectivity": "shiny", "side": "sideways", "color": true})
	assert.Equal(t, 1.0, m.Reflectivity)
	assert.Equal(t, FrontSide, m.Side)
	assert.Equal(t, uint32(0xffffff), m.Color.Hex())
	assert.Equal(t, 4, rec.Count())

	// A rejected color leaves an unset color slot unset.
	m.Color = nil
	m.SetValues(Values{"color": true})
	assert.Nil(t, m.Color)
	assert.Equal(t, 5, rec.Count())

	m.SetValues(Values{"color": 0xff0000})
	require.NotNil(t, m.Color)
	assert.Equal(t, uint32(0xff0000), m.Color.Hex())

}

func TestSetValuesOverdraw(t *testing.T) {

	m := NewMeshBasicMaterial(Values{"overdraw": true})
	assert.Equal(t, 1.0, m.Overdraw)

	m.SetValues(Values{"overdraw": false})
	assert.Equal(t, 0.0, m.Overdraw)

	m.SetValues(Values{"overdraw": 0.5})
	assert.Equal(t, 0.5, m.Overdraw)

}

func TestSetValuesClearsTextures(t *testing.T) {

	tex := NewTexture("brick", nil)
	m := NewMeshBasicMaterial(Values{"map": tex})
	assert.Same(t, tex, m.Map)

	m.SetValues(Values{"map": nil})
	assert.Nil(t, m.Map)

}

func TestNeedsUpdateDispatchesUpdate(t *testing.T) {

	m := NewMeshBasicMaterial(nil)
	m.SetNeedsUpdate(false)

	var updated []IMaterial
	m.AddEventListener(EventUpdate, func(e Event) { updated = append(updated, e.Target.(IMaterial)) })

	m.SetValues(Values{"needsUpdate": true})
	require.Len(t, updated, 1)
	assert.Same(t, m, updated[0])
	assert.True(t, m.NeedsUpdate())

	m.SetNeedsUpdate(false)
	assert.Len(t, updated, 1)
	assert.False(t, m.NeedsUpdate())

	disposed := 0
	m.AddEventListener(EventDispose, func(e Event) { disposed++ })
	m.Dispose()
	assert.Equal(t, 1, disposed)

}

func TestFieldNames(t *testing.T) {
	assert.True(t, HasField(NewMeshPhongMaterial(nil), "normalScale"))
	assert.True(t, HasField(NewMeshPhongMaterial(nil), "opacity"))
	assert.False(t, HasField(NewMeshBasicMaterial(nil), "shininess"))
	assert.Contains(t, FieldNames(NewSpriteMaterial(nil)), "rotation")
}

func TestCloneIsIndependent(t *testing.T) {

	tex := NewTexture("diffuse", nil)
	blendAlpha := OneFactor

	original := NewMeshPhongMaterial(Values{
		"name":          "brick",
		"color":         0x884422,
		"map":           tex,
		"shininess":     80,
		"normalScale":   NewVector2(0.5, 0.5),
		"blendSrcAlpha": blendAlpha,
		"colorWrite":    false,
	})

	clone := original.Clone().(*MeshPhongMaterial)

	assert.NotEqual(t, original.ID(), clone.ID())
	assert.NotEqual(t, original.UUID(), clone.UUID())
	assert.Equal(t, "brick", clone.Name)
	assert.Equal(t, KindMeshPhong, clone.Kind())
	assert.Equal(t, 80.0, clone.Shininess)
	assert.Equal(t, original.NormalScale, clone.NormalScale)
	assert.False(t, clone.ColorWrite)
	require.NotNil(t, clone.BlendSrcAlpha)
	assert.Equal(t, OneFactor, *clone.BlendSrcAlpha)

	// Textures are shared; colors and pointers aren't.
	assert.Same(t, tex, clone.Map)
	assert.NotSame(t, original.Color, clone.Color)
	assert.NotSame(t, original.BlendSrcAlpha, clone.BlendSrcAlpha)

	clone.Color.SetHex(0x000000)
	assert.Equal(t, uint32(0x884422), original.Color.Hex())

}

func TestCloneEveryKind(t *testing.T) {

	for kind := KindMaterial; kind <= KindSprite; kind++ {
		m := NewMaterialOfKind(kind, Values{"name": "thing", "opacity": 0.25})
		clone := m.Clone()
		assert.Equal(t, kind, clone.Kind(), kind.String())
		assert.Equal(t, "thing", clone.Base().Name, kind.String())
		assert.Equal(t, 0.25, clone.Base().Opacity, kind.String())
		assert.Equal(t, m.ToJSON().Type, clone.ToJSON().Type)
	}

}

func TestShaderMaterialCloneDeepCopies(t *testing.T) {

	tex := NewTexture("noise", nil)

	original := NewShaderMaterial(Values{
		"defines": map[string]any{"USE_FOG": true, "STEPS": 4},
		"uniforms": map[string]*Uniform{
			"tint":   {Type: "c", Value: NewColor(1, 0, 0, 1)},
			"offset": {Type: "fv1", Value: []float64{1, 2}},
			"noise":  {Type: "t", Value: tex},
		},
	})

	clone := original.Clone().(*ShaderMaterial)

	assert.Equal(t, original.Defines, clone.Defines)
	clone.Defines["STEPS"] = 8
	assert.Equal(t, 4, original.Defines["STEPS"])

	clone.Uniforms["tint"].Value.(*Color).SetRGB(0, 0, 1)
	assert.Equal(t, uint32(0xff0000), original.Uniforms["tint"].Value.(*Color).Hex())

	clone.Uniforms["offset"].Value.([]float64)[0] = 100
	assert.Equal(t, []float64{1, 2}, original.Uniforms["offset"].Value)

	assert.Same(t, tex, clone.Uniforms["noise"].Value)

	clone.DefaultAttributeValues["color"][0] = 0
	assert.Equal(t, []float64{1, 1, 1}, original.DefaultAttributeValues["color"])

}

func TestToJSONOmitsDefaults(t *testing.T) {

	mj := NewMeshBasicMaterial(nil).ToJSON()

	assert.Equal(t, "MeshBasicMaterial", mj.Type)
	assert.Equal(t, 4.2, mj.Metadata.Version)
	assert.Equal(t, "material", mj.Metadata.Type)
	require.NotNil(t, mj.Color)
	assert.Equal(t, uint32(0xffffff), *mj.Color)
	assert.Nil(t, mj.VertexColors)
	assert.Nil(t, mj.Blending)
	assert.Nil(t, mj.Side)
	assert.Nil(t, mj.Opacity)
	assert.Nil(t, mj.Transparent)
	assert.Nil(t, mj.Wireframe)

	data, err := json.Marshal(mj)
	require.NoError(t, err)
	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "opacity")
	assert.NotContains(t, raw, "name")
	assert.Contains(t, raw, "uuid")

}

func TestToJSONPerKind(t *testing.T) {

	phong := NewMeshPhongMaterial(Values{"shading": FlatShading, "vertexColors": FaceColors}).ToJSON()
	require.NotNil(t, phong.Shininess)
	assert.Equal(t, 30.0, *phong.Shininess)
	assert.NotNil(t, phong.Specular)
	assert.NotNil(t, phong.Emissive)
	assert.Equal(t, FlatShading, *phong.Shading)
	assert.Equal(t, FaceColors, *phong.VertexColors)

	points := NewPointCloudMaterial(Values{"side": DoubleSide, "blending": AdditiveBlending}).ToJSON()
	assert.Nil(t, points.Side)
	assert.Equal(t, AdditiveBlending, *points.Blending)
	assert.Equal(t, 1.0, *points.Size)
	assert.True(t, *points.SizeAttenuation)

	shader := NewShaderMaterial(Values{"wireframe": true}).ToJSON()
	assert.Nil(t, shader.Color)
	assert.NotNil(t, shader.Uniforms)
	assert.Equal(t, defaultVertexShader, *shader.VertexShader)
	assert.True(t, *shader.Wireframe)

	sprite := NewSpriteMaterial(Values{"color": 0x00ff00}).ToJSON()
	assert.Equal(t, uint32(0x00ff00), *sprite.Color)

	normal := NewMeshNormalMaterial(nil).ToJSON()
	assert.Nil(t, normal.Shading)
	assert.Nil(t, normal.Color)

}

func TestMaterialJSONRoundTrip(t *testing.T) {

	original := NewMeshPhongMaterial(Values{
		"name":         "glass",
		"color":        0x336699,
		"specular":     0x222222,
		"shininess":    50,
		"side":         DoubleSide,
		"opacity":      0.5,
		"transparent":  true,
		"wireframe":    true,
		"vertexColors": VertexColors,
	})

	data, err := MarshalMaterial(original)
	require.NoError(t, err)

	parsed, err := ParseMaterialJSON(data)
	require.NoError(t, err)

	phong, ok := parsed.(*MeshPhongMaterial)
	require.True(t, ok)

	assert.Equal(t, original.UUID(), phong.UUID())
	assert.NotEqual(t, original.ID(), phong.ID())
	assert.Equal(t, "glass", phong.Name)
	assert.Equal(t, uint32(0x336699), phong.Color.Hex())
	assert.Equal(t, uint32(0x222222), phong.Specular.Hex())
	assert.Equal(t, 50.0, phong.Shininess)
	assert.Equal(t, DoubleSide, phong.Side)
	assert.Equal(t, 0.5, phong.Opacity)
	assert.True(t, phong.Transparent)
	assert.True(t, phong.Wireframe)
	assert.Equal(t, VertexColors, phong.VertexColors)

	again, err := MarshalMaterial(phong)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

}

func TestParseMaterialJSONErrors(t *testing.T) {

	_, err := ParseMaterialJSON([]byte(`{"metadata": {"version": 4.2, "type": "geometry"}, "type": "MeshBasicMaterial"}`))
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = ParseMaterialJSON([]byte(`{"metadata": {"version": 5.1, "type": "material"}, "type": "MeshBasicMaterial"}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = ParseMaterialJSON([]byte(`{"metadata": {"version": 4, "type": "material"}, "type": "MeshToonMaterial"}`))
	assert.ErrorIs(t, err, ErrUnknownMaterialType)

	_, err = ParseMaterialJSON([]byte(`not json`))
	assert.Error(t, err)

	m, err := ParseMaterialJSON([]byte(`{"metadata": {"version": 4.0, "type": "material"}, "type": "SpriteMaterial", "color": 65280}`))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00ff00), m.(*SpriteMaterial).Color.Hex())

}

func TestNewMaterialOfType(t *testing.T) {

	m, err := NewMaterialOfType("MeshLambertMaterial", Values{"wrapAround": true})
	require.NoError(t, err)
	assert.True(t, m.(*MeshLambertMaterial).WrapAround)

	_, err = NewMaterialOfType("Nope", nil)
	assert.ErrorIs(t, err, ErrUnknownMaterialType)

	kind, ok := ParseMaterialKind("PointCloudMaterial")
	assert.True(t, ok)
	assert.Equal(t, KindPointCloud, kind)

}
