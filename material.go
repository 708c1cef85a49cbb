package prism

import (
	"sync/atomic"
)

// MaterialKind identifies which variant a Material is. The set of kinds is closed; serialization and anything else
// that needs variant-specific behavior switches over it.
type MaterialKind int

const (
	KindMaterial MaterialKind = iota // KindMaterial is the plain base Material.
	KindMeshBasic
	KindMeshLambert
	KindMeshPhong
	KindMeshNormal
	KindMeshDepth
	KindPointCloud
	KindShader
	KindSprite
)

var kindNames = [...]string{
	KindMaterial:    "Material",
	KindMeshBasic:   "MeshBasicMaterial",
	KindMeshLambert: "MeshLambertMaterial",
	KindMeshPhong:   "MeshPhongMaterial",
	KindMeshNormal:  "MeshNormalMaterial",
	KindMeshDepth:   "MeshDepthMaterial",
	KindPointCloud:  "PointCloudMaterial",
	KindShader:      "ShaderMaterial",
	KindSprite:      "SpriteMaterial",
}

// String returns the kind's type name, i.e. "MeshPhongMaterial".
func (kind MaterialKind) String() string {
	if kind < 0 || int(kind) >= len(kindNames) {
		return "Material"
	}
	return kindNames[kind]
}

// ParseMaterialKind returns the MaterialKind for the type name given (i.e. "MeshPhongMaterial").
func ParseMaterialKind(typeName string) (MaterialKind, bool) {
	for k, n := range kindNames {
		if n == typeName {
			return MaterialKind(k), true
		}
	}
	return KindMaterial, false
}

// IMaterial is implemented by the base Material and every Material variant.
type IMaterial interface {
	// Base returns the shared render-state portion of the Material.
	Base() *Material
	// Kind returns the variant this Material is.
	Kind() MaterialKind
	// SetValues merges a configuration patch into the Material; see Values.
	SetValues(values Values)
	// Clone returns an independent copy of the Material, of the same variant. Textures are shared, not copied.
	Clone() IMaterial
	// ToJSON returns the serializable form of the Material, omitting fields left at their defaults.
	ToJSON() *MaterialJSON
	// Dispose notifies the Material's listeners that it's no longer in use.
	Dispose()
}

// materialIDCount is the single id sequence shared by every Material ever created in the process.
var materialIDCount atomic.Uint64

func nextMaterialID() uint64 {
	return materialIDCount.Add(1) - 1
}

// MaterialIDCount returns how many Material ids have been handed out so far; the next Material created gets this id.
func MaterialIDCount() uint64 {
	return materialIDCount.Load()
}

// Material is the render state shared by every kind of Material: blending, depth testing, opacity, and so on.
// Material variants embed it and add their own fields.
// Materials are not safe for concurrent use.
type Material struct {
	EventDispatcher

	id      uint64
	uuid    string
	kind    MaterialKind
	self    IMaterial
	library *Library

	Name string `prop:"name"` // Name is the name of the Material.

	Side Side `prop:"side"` // Side indicates which faces are rendered. Defaults to FrontSide.

	Opacity     float64 `prop:"opacity"`     // Opacity ranges from 0 (invisible) to 1 (opaque); it only has an effect if Transparent is true.
	Transparent bool    `prop:"transparent"` // If Transparent is true, the Material is drawn in the transparent pass.

	Blending BlendMode `prop:"blending"`

	BlendSrc           BlendFactor    `prop:"blendSrc"`
	BlendDst           BlendFactor    `prop:"blendDst"`
	BlendEquation      BlendEquation  `prop:"blendEquation"`
	BlendSrcAlpha      *BlendFactor   `prop:"blendSrcAlpha"` // BlendSrcAlpha overrides BlendSrc for the alpha channel if set.
	BlendDstAlpha      *BlendFactor   `prop:"blendDstAlpha"` // BlendDstAlpha overrides BlendDst for the alpha channel if set.
	BlendEquationAlpha *BlendEquation `prop:"blendEquationAlpha"`

	DepthTest  bool `prop:"depthTest"`
	DepthWrite bool `prop:"depthWrite"`

	ColorWrite bool `prop:"colorWrite"`

	PolygonOffset       bool    `prop:"polygonOffset"`
	PolygonOffsetFactor float64 `prop:"polygonOffsetFactor"`
	PolygonOffsetUnits  float64 `prop:"polygonOffsetUnits"`

	AlphaTest float64 `prop:"alphaTest"` // Fragments with alpha below AlphaTest are discarded.

	// Overdraw is the amount (typically between 0 and 1) faces are grown by to hide antialiasing gaps on
	// software-rasterized output. It used to be a boolean, so patches setting it accept bools too.
	Overdraw float64 `prop:"overdraw"`

	Visible bool `prop:"visible"`

	needsUpdate bool
}

// NewMaterial creates a new base Material with default render state.
func NewMaterial() *Material {
	m := &Material{}
	m.init(KindMaterial, m)
	return m
}

// init assigns identity and default render state; every variant constructor calls it first.
func (material *Material) init(kind MaterialKind, self IMaterial) {
	material.id = nextMaterialID()
	material.uuid = generateUUID()
	material.kind = kind
	material.self = self

	material.Side = FrontSide
	material.Opacity = 1
	material.Blending = NormalBlending
	material.BlendSrc = SrcAlphaFactor
	material.BlendDst = OneMinusSrcAlphaFactor
	material.BlendEquation = AddEquation
	material.DepthTest = true
	material.DepthWrite = true
	material.ColorWrite = true
	material.Visible = true
	material.needsUpdate = true
}

// ID returns the Material's process-unique id. Ids increase with each Material created.
func (material *Material) ID() uint64 {
	return material.id
}

// UUID returns the Material's unique identifier.
func (material *Material) UUID() string {
	return material.uuid
}

// Kind returns the variant this Material is.
func (material *Material) Kind() MaterialKind {
	return material.kind
}

// Type returns the Material's type name, i.e. "MeshPhongMaterial".
func (material *Material) Type() string {
	return material.kind.String()
}

// Base returns the Material itself; variants get this through embedding.
func (material *Material) Base() *Material {
	return material
}

// Library returns the Library from which this Material was loaded. If it was created through code, this function will return nil.
func (material *Material) Library() *Library {
	return material.library
}

// NeedsUpdate returns whether the Material's render state has changed since the renderer last consumed it.
func (material *Material) NeedsUpdate() bool {
	return material.needsUpdate
}

// SetNeedsUpdate sets the needsUpdate flag. Setting it to true dispatches an "update" event first.
func (material *Material) SetNeedsUpdate(needsUpdate bool) {
	if needsUpdate {
		material.Update()
	}
	material.needsUpdate = needsUpdate
}

// Update dispatches an "update" event to the Material's listeners.
func (material *Material) Update() {
	material.DispatchEvent(Event{Type: EventUpdate, Target: material.target()})
}

// Dispose dispatches a "dispose" event to the Material's listeners.
func (material *Material) Dispose() {
	material.DispatchEvent(Event{Type: EventDispose, Target: material.target()})
}

func (material *Material) target() IMaterial {
	if material.self != nil {
		return material.self
	}
	return material
}

// SetValues merges the patch given into the Material; see Values.
func (material *Material) SetValues(values Values) {
	setValues(material, values)
}

// Clone creates a clone of the base Material.
func (material *Material) Clone() IMaterial {
	return material.CloneInto(nil)
}

// CloneInto copies the shared render state into target, creating a new base Material if target is nil, and returns it.
// Identity, listeners, and the needsUpdate flag are not copied; variant-specific fields are left to the variant's Clone.
func (material *Material) CloneInto(target *Material) *Material {

	if target == nil {
		target = NewMaterial()
	}

	target.library = material.library

	target.Name = material.Name

	target.Side = material.Side

	target.Opacity = material.Opacity
	target.Transparent = material.Transparent

	target.Blending = material.Blending

	target.BlendSrc = material.BlendSrc
	target.BlendDst = material.BlendDst
	target.BlendEquation = material.BlendEquation
	target.BlendSrcAlpha = clonePointer(material.BlendSrcAlpha)
	target.BlendDstAlpha = clonePointer(material.BlendDstAlpha)
	target.BlendEquationAlpha = clonePointer(material.BlendEquationAlpha)

	target.DepthTest = material.DepthTest
	target.DepthWrite = material.DepthWrite

	target.ColorWrite = material.ColorWrite

	target.PolygonOffset = material.PolygonOffset
	target.PolygonOffsetFactor = material.PolygonOffsetFactor
	target.PolygonOffsetUnits = material.PolygonOffsetUnits

	target.AlphaTest = material.AlphaTest

	target.Overdraw = material.Overdraw

	target.Visible = material.Visible

	return target

}

// ToJSON returns the serializable form of the base Material.
func (material *Material) ToJSON() *MaterialJSON {
	return materialToJSON(material)
}

func clonePointer[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// NewMaterialOfType creates a Material of the variant named by typeName (i.e. "MeshLambertMaterial"), applying
// the values given. It returns ErrUnknownMaterialType if the name isn't a known variant.
func NewMaterialOfType(typeName string, values Values) (IMaterial, error) {
	kind, ok := ParseMaterialKind(typeName)
	if !ok {
		return nil, unknownTypeError(typeName)
	}
	return NewMaterialOfKind(kind, values), nil
}

// NewMaterialOfKind creates a Material of the given kind, applying the values given.
func NewMaterialOfKind(kind MaterialKind, values Values) IMaterial {
	switch kind {
	case KindMeshBasic:
		return NewMeshBasicMaterial(values)
	case KindMeshLambert:
		return NewMeshLambertMaterial(values)
	case KindMeshPhong:
		return NewMeshPhongMaterial(values)
	case KindMeshNormal:
		return NewMeshNormalMaterial(values)
	case KindMeshDepth:
		return NewMeshDepthMaterial(values)
	case KindPointCloud:
		return NewPointCloudMaterial(values)
	case KindShader:
		return NewShaderMaterial(values)
	case KindSprite:
		return NewSpriteMaterial(values)
	}
	m := NewMaterial()
	m.SetValues(values)
	return m
}
