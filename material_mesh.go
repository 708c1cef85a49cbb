package prism

// MeshBasicMaterial is an unlit Material; it draws its Color (and texture Map) as-is.
type MeshBasicMaterial struct {
	Material

	Color *Color `prop:"color"`

	Map         *Texture `prop:"map"`
	LightMap    *Texture `prop:"lightMap"`
	SpecularMap *Texture `prop:"specularMap"`
	AlphaMap    *Texture `prop:"alphaMap"`
	EnvMap      *Texture `prop:"envMap"`

	Combine         CombineOperation `prop:"combine"` // Combine is how the EnvMap is combined with the surface color.
	Reflectivity    float64          `prop:"reflectivity"`
	RefractionRatio float64          `prop:"refractionRatio"`

	Fog     bool        `prop:"fog"`
	Shading ShadingMode `prop:"shading"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`
	WireframeLinecap   string  `prop:"wireframeLinecap"`
	WireframeLinejoin  string  `prop:"wireframeLinejoin"`

	VertexColors VertexColorMode `prop:"vertexColors"`

	Skinning     bool `prop:"skinning"`
	MorphTargets bool `prop:"morphTargets"`
}

// NewMeshBasicMaterial creates a new MeshBasicMaterial with default values, and then applies the values given.
func NewMeshBasicMaterial(values Values) *MeshBasicMaterial {
	m := &MeshBasicMaterial{
		Color:              NewColorFromHex(0xffffff),
		Combine:            MultiplyOperation,
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		Shading:            SmoothShading,
		WireframeLinewidth: 1,
		WireframeLinecap:   "round",
		WireframeLinejoin:  "round",
		VertexColors:       NoColors,
	}
	m.init(KindMeshBasic, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *MeshBasicMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the MeshBasicMaterial.
func (m *MeshBasicMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new MeshBasicMaterial with the same values. Textures are shared with the original.
func (m *MeshBasicMaterial) Clone() IMaterial {
	c := NewMeshBasicMaterial(nil)
	m.CloneInto(&c.Material)

	c.Color = m.Color.Clone()
	c.Map = m.Map
	c.LightMap = m.LightMap
	c.SpecularMap = m.SpecularMap
	c.AlphaMap = m.AlphaMap
	c.EnvMap = m.EnvMap
	c.Combine = m.Combine
	c.Reflectivity = m.Reflectivity
	c.RefractionRatio = m.RefractionRatio
	c.Fog = m.Fog
	c.Shading = m.Shading
	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth
	c.WireframeLinecap = m.WireframeLinecap
	c.WireframeLinejoin = m.WireframeLinejoin
	c.VertexColors = m.VertexColors
	c.Skinning = m.Skinning
	c.MorphTargets = m.MorphTargets
	return c
}

// MeshLambertMaterial is a diffuse-lit Material, shaded per-vertex.
type MeshLambertMaterial struct {
	Material

	Color    *Color `prop:"color"`
	Emissive *Color `prop:"emissive"`

	WrapAround bool   `prop:"wrapAround"`
	WrapRGB    Vector `prop:"wrapRGB"`

	Map         *Texture `prop:"map"`
	LightMap    *Texture `prop:"lightMap"`
	SpecularMap *Texture `prop:"specularMap"`
	AlphaMap    *Texture `prop:"alphaMap"`
	EnvMap      *Texture `prop:"envMap"`

	Combine         CombineOperation `prop:"combine"`
	Reflectivity    float64          `prop:"reflectivity"`
	RefractionRatio float64          `prop:"refractionRatio"`

	Fog     bool        `prop:"fog"`
	Shading ShadingMode `prop:"shading"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`
	WireframeLinecap   string  `prop:"wireframeLinecap"`
	WireframeLinejoin  string  `prop:"wireframeLinejoin"`

	VertexColors VertexColorMode `prop:"vertexColors"`

	Skinning     bool `prop:"skinning"`
	MorphTargets bool `prop:"morphTargets"`
	MorphNormals bool `prop:"morphNormals"`
}

// NewMeshLambertMaterial creates a new MeshLambertMaterial with default values, and then applies the values given.
func NewMeshLambertMaterial(values Values) *MeshLambertMaterial {
	m := &MeshLambertMaterial{
		Color:              NewColorFromHex(0xffffff),
		Emissive:           NewColorFromHex(0x000000),
		WrapRGB:            Vector{1, 1, 1, 0},
		Combine:            MultiplyOperation,
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		Shading:            SmoothShading,
		WireframeLinewidth: 1,
		WireframeLinecap:   "round",
		WireframeLinejoin:  "round",
		VertexColors:       NoColors,
	}
	m.init(KindMeshLambert, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *MeshLambertMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the MeshLambertMaterial.
func (m *MeshLambertMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new MeshLambertMaterial with the same values. Textures are shared with the original.
func (m *MeshLambertMaterial) Clone() IMaterial {
	c := NewMeshLambertMaterial(nil)
	m.CloneInto(&c.Material)

	c.Color = m.Color.Clone()
	c.Emissive = m.Emissive.Clone()
	c.WrapAround = m.WrapAround
	c.WrapRGB = m.WrapRGB
	c.Map = m.Map
	c.LightMap = m.LightMap
	c.SpecularMap = m.SpecularMap
	c.AlphaMap = m.AlphaMap
	c.EnvMap = m.EnvMap
	c.Combine = m.Combine
	c.Reflectivity = m.Reflectivity
	c.RefractionRatio = m.RefractionRatio
	c.Fog = m.Fog
	c.Shading = m.Shading
	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth
	c.WireframeLinecap = m.WireframeLinecap
	c.WireframeLinejoin = m.WireframeLinejoin
	c.VertexColors = m.VertexColors
	c.Skinning = m.Skinning
	c.MorphTargets = m.MorphTargets
	c.MorphNormals = m.MorphNormals
	return c
}

// MeshPhongMaterial is a Material lit per-pixel with specular highlights.
type MeshPhongMaterial struct {
	Material

	Color     *Color  `prop:"color"`    // Color is the diffuse color.
	Emissive  *Color  `prop:"emissive"` // Emissive is light given off by the surface regardless of scene lighting.
	Specular  *Color  `prop:"specular"`
	Shininess float64 `prop:"shininess"` // Shininess is the sharpness of the specular highlight.

	Metal      bool   `prop:"metal"`
	WrapAround bool   `prop:"wrapAround"`
	WrapRGB    Vector `prop:"wrapRGB"`

	Map       *Texture `prop:"map"`
	LightMap  *Texture `prop:"lightMap"`
	BumpMap   *Texture `prop:"bumpMap"`
	BumpScale float64  `prop:"bumpScale"`

	NormalMap   *Texture `prop:"normalMap"`
	NormalScale Vector2  `prop:"normalScale"`

	SpecularMap *Texture `prop:"specularMap"`
	AlphaMap    *Texture `prop:"alphaMap"`
	EnvMap      *Texture `prop:"envMap"`

	Combine         CombineOperation `prop:"combine"`
	Reflectivity    float64          `prop:"reflectivity"`
	RefractionRatio float64          `prop:"refractionRatio"`

	Fog     bool        `prop:"fog"`
	Shading ShadingMode `prop:"shading"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`
	WireframeLinecap   string  `prop:"wireframeLinecap"`
	WireframeLinejoin  string  `prop:"wireframeLinejoin"`

	VertexColors VertexColorMode `prop:"vertexColors"`

	Skinning     bool `prop:"skinning"`
	MorphTargets bool `prop:"morphTargets"`
	MorphNormals bool `prop:"morphNormals"`
}

// NewMeshPhongMaterial creates a new MeshPhongMaterial with default values, and then applies the values given.
func NewMeshPhongMaterial(values Values) *MeshPhongMaterial {
	m := &MeshPhongMaterial{
		Color:              NewColorFromHex(0xffffff),
		Emissive:           NewColorFromHex(0x000000),
		Specular:           NewColorFromHex(0x111111),
		Shininess:          30,
		WrapRGB:            Vector{1, 1, 1, 0},
		BumpScale:          1,
		NormalScale:        Vector2{1, 1},
		Combine:            MultiplyOperation,
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		Shading:            SmoothShading,
		WireframeLinewidth: 1,
		WireframeLinecap:   "round",
		WireframeLinejoin:  "round",
		VertexColors:       NoColors,
	}
	m.init(KindMeshPhong, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *MeshPhongMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the MeshPhongMaterial.
func (m *MeshPhongMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new MeshPhongMaterial with the same values. Textures are shared with the original.
func (m *MeshPhongMaterial) Clone() IMaterial {
	c := NewMeshPhongMaterial(nil)
	m.CloneInto(&c.Material)

	c.Color = m.Color.Clone()
	c.Emissive = m.Emissive.Clone()
	c.Specular = m.Specular.Clone()
	c.Shininess = m.Shininess

	c.Metal = m.Metal
	c.WrapAround = m.WrapAround
	c.WrapRGB = m.WrapRGB

	c.Map = m.Map
	c.LightMap = m.LightMap
	c.BumpMap = m.BumpMap
	c.BumpScale = m.BumpScale

	c.NormalMap = m.NormalMap
	c.NormalScale = m.NormalScale

	c.SpecularMap = m.SpecularMap
	c.AlphaMap = m.AlphaMap
	c.EnvMap = m.EnvMap

	c.Combine = m.Combine
	c.Reflectivity = m.Reflectivity
	c.RefractionRatio = m.RefractionRatio

	c.Fog = m.Fog
	c.Shading = m.Shading

	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth
	c.WireframeLinecap = m.WireframeLinecap
	c.WireframeLinejoin = m.WireframeLinejoin

	c.VertexColors = m.VertexColors

	c.Skinning = m.Skinning
	c.MorphTargets = m.MorphTargets
	c.MorphNormals = m.MorphNormals

	return c
}

// MeshNormalMaterial colors surfaces by their normals.
type MeshNormalMaterial struct {
	Material

	Shading ShadingMode `prop:"shading"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`

	MorphTargets bool `prop:"morphTargets"`
}

// NewMeshNormalMaterial creates a new MeshNormalMaterial with default values, and then applies the values given.
func NewMeshNormalMaterial(values Values) *MeshNormalMaterial {
	m := &MeshNormalMaterial{
		Shading:            FlatShading,
		WireframeLinewidth: 1,
	}
	m.init(KindMeshNormal, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *MeshNormalMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the MeshNormalMaterial.
func (m *MeshNormalMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new MeshNormalMaterial with the same values.
func (m *MeshNormalMaterial) Clone() IMaterial {
	c := NewMeshNormalMaterial(nil)
	m.CloneInto(&c.Material)
	c.Shading = m.Shading
	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth
	c.MorphTargets = m.MorphTargets
	return c
}

// MeshDepthMaterial colors surfaces by their distance from the camera.
type MeshDepthMaterial struct {
	Material

	MorphTargets bool `prop:"morphTargets"`

	Wireframe          bool    `prop:"wireframe"`
	WireframeLinewidth float64 `prop:"wireframeLinewidth"`
}

// NewMeshDepthMaterial creates a new MeshDepthMaterial with default values, and then applies the values given.
func NewMeshDepthMaterial(values Values) *MeshDepthMaterial {
	m := &MeshDepthMaterial{
		WireframeLinewidth: 1,
	}
	m.init(KindMeshDepth, m)
	m.SetValues(values)
	return m
}

// SetValues merges the patch given into the Material; see Values.
func (m *MeshDepthMaterial) SetValues(values Values) { setValues(m, values) }
// ToJSON returns the serializable form of the MeshDepthMaterial.
func (m *MeshDepthMaterial) ToJSON() *MaterialJSON   { return materialToJSON(m) }

// Clone returns a new MeshDepthMaterial with the same values.
func (m *MeshDepthMaterial) Clone() IMaterial {
	c := NewMeshDepthMaterial(nil)
	m.CloneInto(&c.Material)
	c.MorphTargets = m.MorphTargets
	c.Wireframe = m.Wireframe
	c.WireframeLinewidth = m.WireframeLinewidth
	return c
}
