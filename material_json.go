package prism

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

const (
	materialFormatVersion   = 4.2
	materialFormatType      = "material"
	materialFormatGenerator = "MaterialExporter"
)

// supportedFormats is the range of serialized material format versions ParseMaterialJSON accepts.
var supportedFormats = mustConstraint(">= 4.0, < 5.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// MaterialMetadata describes the serialized format a MaterialJSON was written in.
type MaterialMetadata struct {
	Version   float64 `json:"version"`
	Type      string  `json:"type"`
	Generator string  `json:"generator"`
}

// MaterialJSON is the serialized form of a Material. Fields that are nil were left at their defaults (or don't
// apply to the Material's kind) and are omitted from the output.
type MaterialJSON struct {
	Metadata MaterialMetadata `json:"metadata"`
	UUID     string           `json:"uuid"`
	Type     string           `json:"type"`
	Name     string           `json:"name,omitempty"`

	Color    *uint32 `json:"color,omitempty"`
	Emissive *uint32 `json:"emissive,omitempty"`
	Specular *uint32 `json:"specular,omitempty"`

	Shininess       *float64 `json:"shininess,omitempty"`
	Size            *float64 `json:"size,omitempty"`
	SizeAttenuation *bool    `json:"sizeAttenuation,omitempty"`

	VertexColors *VertexColorMode `json:"vertexColors,omitempty"`
	Shading      *ShadingMode     `json:"shading,omitempty"`
	Blending     *BlendMode       `json:"blending,omitempty"`
	Side         *Side            `json:"side,omitempty"`

	Uniforms       map[string]*Uniform `json:"uniforms,omitempty"`
	VertexShader   *string             `json:"vertexShader,omitempty"`
	FragmentShader *string             `json:"fragmentShader,omitempty"`

	Opacity     *float64 `json:"opacity,omitempty"`
	Transparent *bool    `json:"transparent,omitempty"`
	Wireframe   *bool    `json:"wireframe,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func hexOf(color *Color) *uint32 {
	if color == nil {
		return ptr(uint32(0))
	}
	return ptr(color.Hex())
}

func materialToJSON(material IMaterial) *MaterialJSON {

	base := material.Base()

	output := &MaterialJSON{
		Metadata: MaterialMetadata{
			Version:   materialFormatVersion,
			Type:      materialFormatType,
			Generator: materialFormatGenerator,
		},
		UUID: base.uuid,
		Type: base.Type(),
		Name: base.Name,
	}

	vertexColors := func(mode VertexColorMode) {
		if mode != NoColors {
			output.VertexColors = ptr(mode)
		}
	}

	shading := func(mode ShadingMode) {
		if mode != SmoothShading {
			output.Shading = ptr(mode)
		}
	}

	blendingAndSide := func(blending bool, side bool) {
		if blending && base.Blending != NormalBlending {
			output.Blending = ptr(base.Blending)
		}
		if side && base.Side != FrontSide {
			output.Side = ptr(base.Side)
		}
	}

	wireframe := false

	switch material.Kind() {

	case KindMeshBasic:
		m := material.(*MeshBasicMaterial)
		output.Color = hexOf(m.Color)
		vertexColors(m.VertexColors)
		blendingAndSide(true, true)
		wireframe = m.Wireframe

	case KindMeshLambert:
		m := material.(*MeshLambertMaterial)
		output.Color = hexOf(m.Color)
		output.Emissive = hexOf(m.Emissive)
		vertexColors(m.VertexColors)
		shading(m.Shading)
		blendingAndSide(true, true)
		wireframe = m.Wireframe

	case KindMeshPhong:
		m := material.(*MeshPhongMaterial)
		output.Color = hexOf(m.Color)
		output.Emissive = hexOf(m.Emissive)
		output.Specular = hexOf(m.Specular)
		output.Shininess = ptr(m.Shininess)
		vertexColors(m.VertexColors)
		shading(m.Shading)
		blendingAndSide(true, true)
		wireframe = m.Wireframe

	case KindMeshNormal:
		m := material.(*MeshNormalMaterial)
		blendingAndSide(true, true)
		wireframe = m.Wireframe

	case KindMeshDepth:
		m := material.(*MeshDepthMaterial)
		blendingAndSide(true, true)
		wireframe = m.Wireframe

	case KindPointCloud:
		m := material.(*PointCloudMaterial)
		output.Size = ptr(m.Size)
		output.SizeAttenuation = ptr(m.SizeAttenuation)
		output.Color = hexOf(m.Color)
		vertexColors(m.VertexColors)
		blendingAndSide(true, false)

	case KindShader:
		m := material.(*ShaderMaterial)
		output.Uniforms = m.Uniforms
		output.VertexShader = ptr(m.VertexShader)
		output.FragmentShader = ptr(m.FragmentShader)
		wireframe = m.Wireframe

	case KindSprite:
		m := material.(*SpriteMaterial)
		output.Color = hexOf(m.Color)

	}

	if base.Opacity < 1 {
		output.Opacity = ptr(base.Opacity)
	}

	if base.Transparent {
		output.Transparent = ptr(true)
	}

	if wireframe {
		output.Wireframe = ptr(true)
	}

	return output

}

// Values returns the serialized fields as a configuration patch, suitable for applying to a freshly created Material
// of the same type.
func (mj *MaterialJSON) Values() Values {

	values := Values{}

	if mj.Name != "" {
		values["name"] = mj.Name
	}

	setIf := func(key string, present bool, value func() any) {
		if present {
			values[key] = value()
		}
	}

	setIf("color", mj.Color != nil, func() any { return *mj.Color })
	setIf("emissive", mj.Emissive != nil, func() any { return *mj.Emissive })
	setIf("specular", mj.Specular != nil, func() any { return *mj.Specular })
	setIf("shininess", mj.Shininess != nil, func() any { return *mj.Shininess })
	setIf("size", mj.Size != nil, func() any { return *mj.Size })
	setIf("sizeAttenuation", mj.SizeAttenuation != nil, func() any { return *mj.SizeAttenuation })
	setIf("vertexColors", mj.VertexColors != nil, func() any { return *mj.VertexColors })
	setIf("shading", mj.Shading != nil, func() any { return *mj.Shading })
	setIf("blending", mj.Blending != nil, func() any { return *mj.Blending })
	setIf("side", mj.Side != nil, func() any { return *mj.Side })
	setIf("uniforms", mj.Uniforms != nil, func() any { return mj.Uniforms })
	setIf("vertexShader", mj.VertexShader != nil, func() any { return *mj.VertexShader })
	setIf("fragmentShader", mj.FragmentShader != nil, func() any { return *mj.FragmentShader })
	setIf("opacity", mj.Opacity != nil, func() any { return *mj.Opacity })
	setIf("transparent", mj.Transparent != nil, func() any { return *mj.Transparent })
	setIf("wireframe", mj.Wireframe != nil, func() any { return *mj.Wireframe })

	return values

}

// MarshalMaterial serializes the Material to JSON.
func MarshalMaterial(material IMaterial) ([]byte, error) {
	return json.Marshal(material.ToJSON())
}

// ParseMaterialJSON rebuilds a Material from its serialized form. The Material is created with defaults for its
// type, then the serialized fields are applied over them and the uuid restored. It returns ErrInvalidMetadata if the
// data isn't a serialized material, ErrUnsupportedVersion if the format version isn't supported, and
// ErrUnknownMaterialType for unknown types.
func ParseMaterialJSON(data []byte) (IMaterial, error) {

	mj := &MaterialJSON{}
	if err := json.Unmarshal(data, mj); err != nil {
		return nil, fmt.Errorf("error parsing material JSON: %w", err)
	}

	if mj.Metadata.Type != materialFormatType {
		return nil, fmt.Errorf("%w: type is %q, not %q", ErrInvalidMetadata, mj.Metadata.Type, materialFormatType)
	}

	version, err := semver.NewVersion(strconv.FormatFloat(mj.Metadata.Version, 'f', -1, 64))
	if err != nil {
		return nil, fmt.Errorf("%w: version %v: %w", ErrInvalidMetadata, mj.Metadata.Version, err)
	}

	if !supportedFormats.Check(version) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version)
	}

	material, err := NewMaterialOfType(mj.Type, mj.Values())
	if err != nil {
		return nil, err
	}

	if mj.UUID != "" {
		material.Base().uuid = mj.UUID
	}

	return material, nil

}
