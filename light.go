package prism

// ILight is implemented by every light type.
type ILight interface {
	INode
	// LightBase returns the color and on-state shared by every light.
	LightBase() *Light
}

// Light is a light source with a color. The specific light types embed it.
type Light struct {
	*Node
	Color *Color // Color is the color of the Light.
	On    bool   // If the light is on and contributing to the scene.
}

// NewLight returns a new Light. color can be anything Color.Set accepts (a hex value, a style string, a *Color, ...);
// if it's nil or unsupported, the Light is white.
func NewLight(name string, color any) *Light {
	light := &Light{
		Node:  NewNode(name),
		Color: NewColor(1, 1, 1, 1),
		On:    true,
	}
	if color != nil {
		light.Color.Set(color)
	}
	return light
}

// Type returns the NodeType for this object.
func (light *Light) Type() NodeType {
	return NodeTypeLight
}

// LightBase returns the Light itself; the specific light types get this through embedding.
func (light *Light) LightBase() *Light {
	return light
}

// Clone returns a new Light with the same node state and color.
func (light *Light) Clone() INode {
	clone := light.CloneInto(nil)
	clone.adopt(clone)
	clone.callbacks.runOnClone(clone)
	return clone
}

// CloneInto copies the Light's node state (including cloned children) and color into target, creating a new Light if
// target is nil, and returns it. The cloned children still need to be parented to whatever owns target.
func (light *Light) CloneInto(target *Light) *Light {
	if target == nil {
		target = NewLight(light.name, nil)
	}
	target.Node = light.Node.cloneNode()
	target.Color = light.Color.Clone()
	target.On = light.On
	return target
}

// AddChildren parents the provided children Nodes to the Light, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (light *Light) AddChildren(children ...INode) {
	light.addChildren(light, children...)
}

//---------------//

// AmbientLight represents an ambient light that colors the entire Scene.
type AmbientLight struct {
	Light
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience / adherance to GLTF / 3D modelers.
	Energy float32
}

// NewAmbientLight returns a new AmbientLight.
func NewAmbientLight(name string, r, g, b, energy float32) *AmbientLight {
	return &AmbientLight{
		Light:  *NewLight(name, NewColor(r, g, b, 1)),
		Energy: energy,
	}
}

// Type returns the NodeType for this object.
func (amb *AmbientLight) Type() NodeType {
	return NodeTypeAmbientLight
}

// Clone returns a new AmbientLight with the same node state and color.
func (amb *AmbientLight) Clone() INode {
	clone := NewAmbientLight(amb.name, 1, 1, 1, amb.Energy)
	amb.CloneInto(&clone.Light)
	clone.adopt(clone)
	clone.callbacks.runOnClone(clone)
	return clone
}

// AddChildren parents the provided children Nodes to the AmbientLight.
func (amb *AmbientLight) AddChildren(children ...INode) {
	amb.addChildren(amb, children...)
}

//---------------//

// PointLight represents a point light of infinite point-ness.
type PointLight struct {
	Light
	// Range represents the distance after which the light fully attenuates. If this is 0 (the default), it falls off using something akin to the inverse square law.
	Range float64
	// Energy is the overall energy of the Light.
	Energy float32
}

// NewPointLight creates a new Point light.
func NewPointLight(name string, r, g, b, energy float32) *PointLight {
	return &PointLight{
		Light:  *NewLight(name, NewColor(r, g, b, 1)),
		Energy: energy,
	}
}

// Type returns the NodeType for this object.
func (point *PointLight) Type() NodeType {
	return NodeTypePointLight
}

// Clone returns a new PointLight with the same node state, color, energy and range.
func (point *PointLight) Clone() INode {
	clone := NewPointLight(point.name, 1, 1, 1, point.Energy)
	point.CloneInto(&clone.Light)
	clone.Range = point.Range
	clone.adopt(clone)
	clone.callbacks.runOnClone(clone)
	return clone
}

// AddChildren parents the provided children Nodes to the PointLight.
func (point *PointLight) AddChildren(children ...INode) {
	point.addChildren(point, children...)
}

//---------------//

// DirectionalLight represents a directional light of infinite distance.
type DirectionalLight struct {
	Light
	// Energy is the overall energy of the Light.
	Energy float32
}

// NewDirectionalLight creates a new Directional Light with the specified RGB color and energy (assuming 1.0 energy is standard / "100%" lighting).
func NewDirectionalLight(name string, r, g, b, energy float32) *DirectionalLight {
	return &DirectionalLight{
		Light:  *NewLight(name, NewColor(r, g, b, 1)),
		Energy: energy,
	}
}

// Type returns the NodeType for this object.
func (sun *DirectionalLight) Type() NodeType {
	return NodeTypeDirectionalLight
}

// Clone returns a new DirectionalLight with the same node state, color and energy.
func (sun *DirectionalLight) Clone() INode {
	clone := NewDirectionalLight(sun.name, 1, 1, 1, sun.Energy)
	sun.CloneInto(&clone.Light)
	clone.adopt(clone)
	clone.callbacks.runOnClone(clone)
	return clone
}

// Forward returns the direction the light shines in, in world space (the node's -Z axis).
func (sun *DirectionalLight) Forward() Vector {
	return vectorFromVec3(sun.WorldRotation().Rotate(VecZ.Invert().Vec3()))
}

// AddChildren parents the provided children Nodes to the DirectionalLight.
func (sun *DirectionalLight) AddChildren(children ...INode) {
	sun.addChildren(sun, children...)
}

//---------------//

// AreaLight is a rectangular light source. Normal is the direction the rectangle faces, Right is the direction of its
// width; together with Width and Height they define the lit area.
type AreaLight struct {
	Light

	Normal Vector
	Right  Vector

	Intensity float64

	Width  float64
	Height float64

	ConstantAttenuation  float64
	LinearAttenuation    float64
	QuadraticAttenuation float64
}

// NewAreaLight creates a new AreaLight. color is handled as in NewLight; an intensity of 0 is treated as the default
// intensity of 1.
func NewAreaLight(name string, color any, intensity float64) *AreaLight {
	if intensity == 0 {
		intensity = 1
	}
	return &AreaLight{
		Light:                *NewLight(name, color),
		Normal:               Vector{0, -1, 0, 0},
		Right:                Vector{1, 0, 0, 0},
		Intensity:            intensity,
		Width:                1,
		Height:               1,
		ConstantAttenuation:  1.5,
		LinearAttenuation:    0.5,
		QuadraticAttenuation: 0.1,
	}
}

// Type returns the NodeType for this object.
func (area *AreaLight) Type() NodeType {
	return NodeTypeAreaLight
}

// Clone returns a new AreaLight with the same node state, color and area settings.
func (area *AreaLight) Clone() INode {
	clone := NewAreaLight(area.name, nil, area.Intensity)
	area.CloneInto(&clone.Light)
	clone.Normal = area.Normal
	clone.Right = area.Right
	clone.Intensity = area.Intensity
	clone.Width = area.Width
	clone.Height = area.Height
	clone.ConstantAttenuation = area.ConstantAttenuation
	clone.LinearAttenuation = area.LinearAttenuation
	clone.QuadraticAttenuation = area.QuadraticAttenuation
	clone.adopt(clone)
	clone.callbacks.runOnClone(clone)
	return clone
}

// AddChildren parents the provided children Nodes to the AreaLight.
func (area *AreaLight) AddChildren(children ...INode) {
	area.addChildren(area, children...)
}

// Area returns the area of the light's rectangle.
func (area *AreaLight) Area() float64 {
	return area.Width * area.Height
}

// Attenuation returns the light's falloff factor at the given distance, from the constant, linear and quadratic terms.
func (area *AreaLight) Attenuation(distance float64) float64 {
	d := area.ConstantAttenuation + area.LinearAttenuation*distance + area.QuadraticAttenuation*distance*distance
	if d <= 0 {
		return 1
	}
	return 1 / d
}
