package prism

import (
	"github.com/jinzhu/copier"
)

// PointCloudMaterial draws each vertex as a screen-facing square.
type PointCloudMaterial struct {
	Material

	Color *Color   `prop:"color"`
	Map   *Texture `prop:"map"`

	Size            float64 `prop:"size"`            // Size is the size of each point.
	SizeAttenuation bool    `prop:"sizeAttenuation"` // If SizeAttenuation is true, points shrink with distance.

	VertexColors VertexColorMode `prop:"vertexColors"`

	Fog bool `prop:"fog"`
}

// NewPointCloudMaterial creates a new PointCloudMaterial with default values, and then applies the values given.
func NewPointCloudMaterial(values Values) *PointCloudMaterial {
	m := &PointCloudMaterial{
		Color:           NewColorFromHex(0xffffff),
		Size:            1,
		SizeAttenuation: true,
		VertexColors:    NoColors,
		Fog:             true,
	}
	m.init(KindPointCloud, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *PointCloudMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the PointCloudMaterial.
func (m *PointCloudMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new PointCloudMaterial with the same values. The Map is shared with the original.
func (m *PointCloudMaterial) Clone() IMaterial {
	c := NewPointCloudMaterial(nil)
	m.CloneInto(&c.Material)
	c.Color = m.Color.Clone()
	c.Map = m.Map
	c.Size = m.Size
	c.SizeAttenuation = m.SizeAttenuation
	c.VertexColors = m.VertexColors
	c.Fog = m.Fog
	return c
}

// SpriteMaterial draws a screen-facing quad.
type SpriteMaterial struct {
	Material

	Color    *Color   `prop:"color"`
	Map      *Texture `prop:"map"`
	Rotation float64  `prop:"rotation"` // Rotation is the sprite's rotation in radians.
	Fog      bool     `prop:"fog"`
}

// NewSpriteMaterial creates a new SpriteMaterial with default values, and then applies the values given.
func NewSpriteMaterial(values Values) *SpriteMaterial {
	m := &SpriteMaterial{
		Color: NewColorFromHex(0xffffff),
	}
	m.init(KindSprite, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *SpriteMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the SpriteMaterial.
func (m *SpriteMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new SpriteMaterial with the same values. The Map is shared with the original.
func (m *SpriteMaterial) Clone() IMaterial {
	c := NewSpriteMaterial(nil)
	m.CloneInto(&c.Material)
	c.Color = m.Color.Clone()
	c.Map = m.Map
	c.Rotation = m.Rotation
	c.Fog = m.Fog
	return c
}

// Uniform is a named shader input. Type is the GLSL-ish type tag ("f", "v3", "c", "t", ...); Value is the value
// itself, typically a number, *Color, Vector, Vector2, *Texture, or a slice of those.
type Uniform struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Clone returns a copy of the Uniform. Colors, vectors, slices and maps are copied; Textures are shared.
func (u *Uniform) Clone() *Uniform {
	if u == nil {
		return nil
	}
	return &Uniform{Type: u.Type, Value: cloneUniformValue(u.Value)}
}

func cloneUniformValue(value any) any {
	switch v := value.(type) {
	case *Color:
		return v.Clone()
	case *Vector:
		return clonePointer(v)
	case *Vector2:
		return clonePointer(v)
	case []float64:
		return append([]float64(nil), v...)
	case []float32:
		return append([]float32(nil), v...)
	case []int:
		return append([]int(nil), v...)
	case []Vector:
		return append([]Vector(nil), v...)
	case []Vector2:
		return append([]Vector2(nil), v...)
	case []*Texture:
		return append([]*Texture(nil), v...)
	case []*Color:
		out := make([]*Color, len(v))
		for i, c := range v {
			out[i] = c.Clone()
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneUniformValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneUniformValue(e)
		}
		return out
	}
	// Numbers, bools, value-type vectors and *Texture are returned as-is.
	return value
}

func cloneUniforms(uniforms map[string]*Uniform) map[string]*Uniform {
	if uniforms == nil {
		return nil
	}
	out := make(map[string]*Uniform, len(uniforms))
	for name, u := range uniforms {
		out[name] = u.Clone()
	}
	return out
}

const (
	defaultVertexShader   = "void main() {\n\tgl_Position = projectionMatrix * modelViewMatrix * vec4( position, 1.0 );\n}"
	defaultFragmentShader = "void main() {\n\tgl_FragColor = vec4( 1.0, 0.0, 0.0, 1.0 );\n}"
)

// ShaderMaterial is a Material rendered with custom shader source.
type ShaderMaterial struct {
	Material

	Defines    map[string]any      `prop:"defines"`
	Uniforms   map[string]*Uniform `prop:"uniforms"`
	Attributes map[string]*Uniform `prop:"attributes"`

	VertexShader   string `prop:"vertexShader"`
	FragmentShader string `prop:"fragmentShader"`

	Shading   ShadingMode `prop:"shading"`
	Linewidth float64     `prop:"linewidth"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`

	Fog    bool `prop:"fog"`    // If Fog is true, the shader is given fog uniforms.
	Lights bool `prop:"lights"` // If Lights is true, the shader is given light uniforms.

	VertexColors VertexColorMode `prop:"vertexColors"`

	Skinning     bool `prop:"skinning"`
	MorphTargets bool `prop:"morphTargets"`
	MorphNormals bool `prop:"morphNormals"`

	// DefaultAttributeValues are used for attributes the geometry doesn't provide.
	DefaultAttributeValues map[string][]float64 `prop:"defaultAttributeValues"`

	// Index0AttributeName, if set, forces the named attribute to location 0.
	Index0AttributeName string `prop:"index0AttributeName"`
}

// NewShaderMaterial creates a new ShaderMaterial with default values, and then applies the values given.
func NewShaderMaterial(values Values) *ShaderMaterial {
	m := &ShaderMaterial{
		Defines:            map[string]any{},
		Uniforms:           map[string]*Uniform{},
		VertexShader:       defaultVertexShader,
		FragmentShader:     defaultFragmentShader,
		Shading:            SmoothShading,
		Linewidth:          1,
		WireframeLinewidth: 1,
		VertexColors:       NoColors,
		DefaultAttributeValues: map[string][]float64{
			"color": {1, 1, 1},
			"uv":    {0, 0},
			"uv2":   {0, 0},
		},
	}
	m.init(KindShader, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *ShaderMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the ShaderMaterial.
func (m *ShaderMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new ShaderMaterial with the same values. Uniform values are copied, except for Textures,
// which are shared.
func (m *ShaderMaterial) Clone() IMaterial {
	c := NewShaderMaterial(nil)
	m.CloneInto(&c.Material)

	c.Defines = nil
	if m.Defines != nil {
		c.Defines = map[string]any{}
		if err := copier.CopyWithOption(&c.Defines, m.Defines, copier.Option{DeepCopy: true}); err != nil {
			logger.Warnf("ShaderMaterial: error copying defines: %s", err)
		}
	}

	c.Uniforms = cloneUniforms(m.Uniforms)
	c.Attributes = cloneUniforms(m.Attributes)

	c.VertexShader = m.VertexShader
	c.FragmentShader = m.FragmentShader

	c.Shading = m.Shading
	c.Linewidth = m.Linewidth

	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth

	c.Fog = m.Fog
	c.Lights = m.Lights

	c.VertexColors = m.VertexColors

	c.Skinning = m.Skinning
	c.MorphTargets = m.MorphTargets
	c.MorphNormals = m.MorphNormals

	c.DefaultAttributeValues = nil
	if m.DefaultAttributeValues != nil {
		c.DefaultAttributeValues = map[string][]float64{}
		if err := copier.CopyWithOption(&c.DefaultAttributeValues, m.DefaultAttributeValues, copier.Option{DeepCopy: true}); err != nil {
			logger.Warnf("ShaderMaterial: error copying default attribute values: %s", err)
		}
	}

	c.Index0AttributeName = m.Index0AttributeName

	return c
}
