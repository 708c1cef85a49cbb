package prism

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeType represents a Node's type. Node types are categorized, and can be said to extend or "be of" more general types.
// For example, a PointLight has a type of NodeTypePointLight. That type can also be said to be NodeTypeLight
// (because it is a light). However, it is not of type NodeTypeAreaLight, as that is a different category.
type NodeType string

const (
	NodeTypeNode NodeType = "Node" // NodeTypeNode represents any generic node

	NodeTypeLight            NodeType = "NodeLight"            // NodeTypeLight represents any generic light
	NodeTypeAmbientLight     NodeType = "NodeLightAmbient"     // NodeTypeAmbientLight represents specifically an ambient light
	NodeTypePointLight       NodeType = "NodeLightPoint"       // NodeTypePointLight represents specifically a point light
	NodeTypeDirectionalLight NodeType = "NodeLightDirectional" // NodeTypeDirectionalLight represents specifically a directional (sun) light
	NodeTypeAreaLight        NodeType = "NodeLightArea"        // NodeTypeAreaLight represents specifically a rectangular area light
)

// Is returns true if a NodeType satisfies another NodeType category. A specific node type can be said to
// contain a more general one, but not vice-versa. For example, a PointLight (which has type NodeTypePointLight) can be
// said to be a Light (NodeTypeLight), but the reverse is not true.
func (nt NodeType) Is(other NodeType) bool {
	if nt == other {
		return true
	}
	return strings.Contains(string(nt), string(other))
}

// INode represents an object that exists in 3D space and can be positioned relative to an origin point.
// By default, this origin point is {0, 0, 0} (or world origin), but Nodes can be parented
// to other Nodes to change this origin (making their movements relative and their transforms
// successive). Lights fully implement the INode interface by means of embedding Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// ID returns the object's unique ID.
	ID() uint64
	// SetName sets the object's name.
	SetName(name string)
	// Clone returns a clone of the specified INode implementer. Children are cloned too.
	Clone() INode
	// SetData sets user-customizeable data that could be usefully stored on this node.
	SetData(data any)
	// Data returns a pointer to user-customizeable data that could be usefully stored on this node.
	Data() any
	// Type returns the NodeType for this object.
	Type() NodeType
	setLibrary(lib *Library)
	// Library returns the source Library from which this Node was instantiated. If it was created through code, this will be nil.
	Library() *Library

	setParent(INode)

	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	// Unparent unparents the Node from its parent, removing it from the scenegraph.
	Unparent()
	// Root returns the root node in this tree by recursively traversing this node's hierarchy of
	// parents upwards.
	Root() INode

	// Index returns the index of the Node in its parent's children list.
	// If the node doesn't have a parent, its index will be -1.
	Index() int

	// Children returns the Node's children.
	Children() []INode
	// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc).
	ChildrenRecursive() []INode

	// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
	// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from this object.
	RemoveChildren(...INode)

	dirtyTransform()

	// ResetLocalTransform resets the local transform properties (position, scale, and rotation) for the Node.
	ResetLocalTransform()

	// LocalRotation returns the object's local rotation.
	LocalRotation() mgl64.Quat
	// SetLocalRotation sets the object's local rotation (relative to any parent).
	SetLocalRotation(rotation mgl64.Quat)
	// LocalPosition returns the object's local position (position relative to its parent).
	LocalPosition() Vector
	// SetLocalPositionVec sets the object's local position (position relative to its parent). If this object has no parent, the position should be
	// relative to world origin (0, 0, 0).
	SetLocalPositionVec(position Vector)
	SetLocalPosition(x, y, z float64)
	// LocalScale returns the object's local scale (scale relative to its parent). If this object has no parent, the scale will be absolute.
	LocalScale() Vector
	// SetLocalScaleVec sets the object's local scale (scale relative to its parent). If this object has no parent, the scale would be absolute.
	SetLocalScaleVec(scale Vector)
	SetLocalScale(w, h, d float64)

	// WorldRotation returns an absolute rotation representing the object's rotation.
	WorldRotation() mgl64.Quat
	// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
	WorldPosition() Vector
	// WorldScale returns the object's absolute world scale as a 3D vector (i.e. X, Y, and Z components).
	WorldScale() Vector

	// Move moves a Node in local space by the x, y, and z values provided.
	Move(x, y, z float64)
	// MoveVec moves a Node in local space using the vector provided.
	MoveVec(moveVec Vector)
	// Rotate rotates a Node on its local orientation on a vector composed of the given x, y, and z values, by the angle provided in radians.
	Rotate(x, y, z, angle float64)
	// RotateVec rotates a Node on its local orientation on the given vector, by the angle provided in radians.
	RotateVec(vec Vector, angle float64)
	// Grow scales the object additively (i.e. calling Node.Grow(1, 0, 0) will scale it +1 on the X-axis).
	Grow(x, y, z float64)

	// Transform returns a matrix indicating the global position, rotation, and scale of the object, transforming it by any parents'.
	// If there's no change between the previous Transform() call and this one, Transform() will return a cached version of the
	// transform for efficiency.
	Transform() mgl64.Mat4

	// Visible returns whether the Object is visible.
	Visible() bool
	// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
	SetVisible(visible, recursive bool)

	// Get searches a node's hierarchy using a string to find a specified node. The path is in the format of names of nodes, separated by forward
	// slashes ('/'), and is relative to the node you use to call Get. "../" goes up one level in the hierarchy.
	Get(path string) INode

	// HierarchyAsString returns a string displaying the hierarchy of this Node, and all recursive children.
	HierarchyAsString() string

	// Path returns a string indicating the hierarchical path to get this Node from the root. The path returned will not contain the root node's name.
	Path() string

	// Properties returns this object's Properties, the custom data it carries.
	Properties() *Properties

	// Callbacks returns the callbacks run when this Node is cloned or reparented.
	Callbacks() *NodeCallbacks
}

var nodeID atomic.Uint64

// Node represents a minimal struct that fully implements the INode interface. Lights embed Node
// into their structs to automatically easily implement INode.
type Node struct {
	id               uint64 // Unique ID for this node
	name             string
	position         Vector
	scale            Vector
	rotation         mgl64.Quat
	visible          bool
	data             any // A place to store a pointer to something if you need it
	children         []INode
	parent           INode
	cachedTransform  mgl64.Mat4
	isTransformDirty bool
	props            *Properties
	callbacks        *NodeCallbacks
	library          *Library // The Library this Node was instantiated from (nil if it wasn't instantiated with a library at all)
}

// NewNode returns a new Node.
func NewNode(name string) *Node {
	return &Node{
		id:               nodeID.Add(1) - 1,
		name:             name,
		scale:            Vector{1, 1, 1, 0},
		rotation:         mgl64.QuatIdent(),
		children:         []INode{},
		visible:          true,
		isTransformDirty: true,
		props:            NewProperties(),
		callbacks:        &NodeCallbacks{},
		// We set this just in case we call a transform property getter before setting it and caching anything
		cachedTransform: mgl64.Ident4(),
	}
}

// ID returns the object's unique ID.
func (node *Node) ID() uint64 {
	return node.id
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Type returns the NodeType for this object.
func (node *Node) Type() NodeType {
	return NodeTypeNode
}

// Library returns the Library from which this Node was instantiated. If it was created through code, this will be nil.
func (node *Node) Library() *Library {
	return node.library
}

func (node *Node) setLibrary(library *Library) {
	node.library = library
}

// Clone returns a new Node with the same transform, properties and data. Children are cloned and parented to the new Node.
func (node *Node) Clone() INode {
	newNode := node.cloneNode()
	newNode.adopt(newNode)
	newNode.callbacks.runOnClone(newNode)
	return newNode
}

// cloneNode copies the Node's state and clones its children; the children still have to be adopted by whatever
// ends up owning the new Node.
func (node *Node) cloneNode() *Node {
	newNode := NewNode(node.name)
	newNode.position = node.position
	newNode.scale = node.scale
	newNode.rotation = node.rotation
	newNode.visible = node.visible
	newNode.data = node.data
	newNode.props = node.props.Clone()
	newNode.callbacks = node.callbacks.Clone()
	newNode.library = node.library

	for _, child := range node.children {
		newNode.children = append(newNode.children, child.Clone())
	}

	newNode.dirtyTransform()
	return newNode
}

// adopt sets the parent of each of the Node's children to owner, which is the Node itself or the struct embedding it.
func (node *Node) adopt(owner INode) {
	for _, child := range node.children {
		child.setParent(owner)
	}
}

// SetData sets user-customizeable data that could be usefully stored on this node.
func (node *Node) SetData(data any) {
	node.data = data
}

// Data returns a pointer to user-customizeable data that could be usefully stored on this node.
func (node *Node) Data() any {
	return node.data
}

// Transform returns a matrix indicating the global position, rotation, and scale of the object, transforming it by any parents'.
// If there's no change between the previous Transform() call and this one, Transform() will return a cached version of the
// transform for efficiency.
func (node *Node) Transform() mgl64.Mat4 {

	// P * T * R * S

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := mgl64.Translate3D(node.position.X, node.position.Y, node.position.Z)
	transform = transform.Mul4(node.rotation.Mat4())
	transform = transform.Mul4(mgl64.Scale3D(node.scale.X, node.scale.Y, node.scale.Z))

	if node.parent != nil {
		transform = node.parent.Transform().Mul4(transform)
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// dirtyTransform sets this Node and all recursive children's isTransformDirty flags to be true, indicating that they need to be
// rebuilt. This should be called when modifying the transformation properties (position, scale, rotation) of the Node.
func (node *Node) dirtyTransform() {
	for _, child := range node.children {
		child.dirtyTransform()
	}
	node.isTransformDirty = true
}

// LocalPosition returns a 3D Vector consisting of the object's local position (position relative to its parent). If this object has no parent, the position will be
// relative to world origin (0, 0, 0).
func (node *Node) LocalPosition() Vector {
	return node.position
}

// ResetLocalTransform resets the local transform properties (position, scale, and rotation) for the Node.
func (node *Node) ResetLocalTransform() {
	node.position = Vector{}
	node.scale = Vector{1, 1, 1, 0}
	node.rotation = mgl64.QuatIdent()
	node.dirtyTransform()
}

// WorldPosition returns a 3D Vector consisting of the object's world position (position relative to the world origin point of {0, 0, 0}).
func (node *Node) WorldPosition() Vector {
	return vectorFromVec3(node.Transform().Col(3).Vec3())
}

// SetLocalPosition sets the object's local position (position relative to its parent). If this object has no parent, the position should be
// relative to world origin (0, 0, 0).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.position.X = x
	node.position.Y = y
	node.position.Z = z
	node.dirtyTransform()
}

// SetLocalPositionVec sets the object's local position (position relative to its parent). If this object has no parent, the position should be
// relative to world origin (0, 0, 0).
func (node *Node) SetLocalPositionVec(position Vector) {
	node.SetLocalPosition(position.X, position.Y, position.Z)
}

// LocalScale returns the object's local scale (scale relative to its parent). If this object has no parent, the scale will be absolute.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScaleVec sets the object's local scale (scale relative to its parent). If this object has no parent, the scale would be absolute.
func (node *Node) SetLocalScaleVec(scale Vector) {
	node.SetLocalScale(scale.X, scale.Y, scale.Z)
}

// SetLocalScale sets the object's local scale (scale relative to its parent). If this object has no parent, the scale would be absolute.
func (node *Node) SetLocalScale(w, h, d float64) {
	node.scale.X = w
	node.scale.Y = h
	node.scale.Z = d
	node.dirtyTransform()
}

// WorldScale returns the object's absolute world scale as a 3D vector (i.e. X, Y, and Z components).
func (node *Node) WorldScale() Vector {
	t := node.Transform()
	return Vector{t.Col(0).Vec3().Len(), t.Col(1).Vec3().Len(), t.Col(2).Vec3().Len(), 0}
}

// LocalRotation returns the object's local rotation.
func (node *Node) LocalRotation() mgl64.Quat {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation (relative to any parent).
func (node *Node) SetLocalRotation(rotation mgl64.Quat) {
	node.rotation = rotation.Normalize()
	node.dirtyTransform()
}

// WorldRotation returns an absolute rotation representing the object's rotation. Note that this is a bit slow as it
// requires decomposing the node's world transform, so you want to use node.LocalRotation() if you can.
func (node *Node) WorldRotation() mgl64.Quat {
	t := node.Transform()
	scale := node.WorldScale()
	rot := mgl64.Ident4()
	for i, s := range []float64{scale.X, scale.Y, scale.Z} {
		if s == 0 {
			continue
		}
		col := t.Col(i).Vec3().Mul(1 / s)
		rot.SetCol(i, col.Vec4(0))
	}
	return mgl64.Mat4ToQuat(rot).Normalize()
}

// Move moves a Node in local space by the x, y, and z values provided.
func (node *Node) Move(x, y, z float64) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	node.position.X += x
	node.position.Y += y
	node.position.Z += z
	node.dirtyTransform()
}

// MoveVec moves a Node in local space using the vector provided.
func (node *Node) MoveVec(vec Vector) {
	node.Move(vec.X, vec.Y, vec.Z)
}

// Rotate rotates a Node on its local orientation on a vector composed of the given x, y, and z values, by the angle provided in radians.
func (node *Node) Rotate(x, y, z, angle float64) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	q := mgl64.QuatRotate(angle, mgl64.Vec3{x, y, z}.Normalize())
	node.SetLocalRotation(node.rotation.Mul(q))
}

// RotateVec rotates a Node on its local orientation on the given vector, by the angle provided in radians.
func (node *Node) RotateVec(vec Vector, angle float64) {
	node.Rotate(vec.X, vec.Y, vec.Z, angle)
}

// Grow scales the object additively using the x, y, and z arguments provided (i.e. calling
// Node.Grow(1, 0, 0) will scale it +1 on the X-axis).
func (node *Node) Grow(x, y, z float64) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	node.SetLocalScale(node.scale.X+x, node.scale.Y+y, node.scale.Z+z)
}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() INode {
	return node.parent
}

// setParent sets the Node's parent.
func (node *Node) setParent(parent INode) {
	node.parent = parent
}

// addChildren adds the children to the parent node, but sets their parent to be the parent node passed. This is done so children have the
// correct, specific Node as parent; without it, after light.AddChildren(child), child.Parent() would be light.Node rather than light.
func (node *Node) addChildren(parent INode, children ...INode) {
	for _, child := range children {
		oldParent := child.Parent()
		if oldParent != nil {
			oldParent.RemoveChildren(child)
		}
		child.setParent(parent)
		child.dirtyTransform()
		node.children = append(node.children, child)
		child.Callbacks().runOnReparent(child, oldParent, parent)
	}
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (node *Node) AddChildren(children ...INode) {
	node.addChildren(node, children...)
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...INode) {

	for _, child := range children {
		for i, c := range node.children {
			if nodeOf(c) == nodeOf(child) {
				child = c
				oldParent := child.Parent()
				child.setParent(nil)
				child.dirtyTransform()
				node.children[i] = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				child.Callbacks().runOnReparent(child, oldParent, nil)
				break
			}
		}
	}

}

// Unparent unparents the Node from its parent, removing it from the scenegraph. Note that this needs to be overridden for objects that embed Node.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Index returns the index of the Node in its parent's children list.
// If the node doesn't have a parent, its index will be -1.
func (node *Node) Index() int {
	if node.parent != nil {
		for i, c := range node.parent.Children() {
			if nodeOf(c) == node {
				return i
			}
		}
	}
	return -1
}

// nodeOf returns the Node embedded in the INode given.
func nodeOf(n INode) *Node {
	switch t := n.(type) {
	case *Node:
		return t
	case interface{ node() *Node }:
		return t.node()
	}
	return nil
}

func (node *Node) node() *Node {
	return node
}

// Children returns the Node's children.
func (node *Node) Children() []INode {
	return append(make([]INode, 0, len(node.children)), node.children...)
}

// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc).
func (node *Node) ChildrenRecursive() []INode {
	out := node.Children()
	for _, child := range node.children {
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// Visible returns whether the Object is visible.
func (node *Node) Visible() bool {
	return node.visible
}

// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
func (node *Node) SetVisible(visible bool, recursive bool) {
	if recursive {
		for _, child := range node.children {
			child.SetVisible(visible, true)
		}
	}
	node.visible = visible
}

// Properties returns the object's Properties.
func (node *Node) Properties() *Properties {
	return node.props
}

// Callbacks returns the callbacks run when the Node is cloned or reparented.
func (node *Node) Callbacks() *NodeCallbacks {
	return node.callbacks
}

// HierarchyAsString returns a string displaying the hierarchy of this Node, and all recursive children.
// This is a useful function to debug the layout of a node tree, for example.
// All Nodes except for the top-level Node will show their type by means of a prefix ("POINT" for PointLights, for example).
// All Nodes listed in the hierarchy will also show their world positions, truncated to the first 2 decimals.
func (node *Node) HierarchyAsString() string {

	var printNode func(node INode, level int) string

	printNode = func(node INode, level int) string {

		prefix := "ROOT"

		if level > 0 {

			nodeType := node.Type()

			switch {
			case nodeType.Is(NodeTypeAmbientLight):
				prefix = "AMB"
			case nodeType.Is(NodeTypeDirectionalLight):
				prefix = "DIR"
			case nodeType.Is(NodeTypePointLight):
				prefix = "POINT"
			case nodeType.Is(NodeTypeAreaLight):
				prefix = "AREA"
			case nodeType.Is(NodeTypeLight):
				prefix = "LIGHT"
			default:
				prefix = "NODE"
			}

		}

		var str strings.Builder

		if node.Parent() != nil {
			str.WriteString(strings.Repeat("    |", level))
			str.WriteString("\n")
		}

		str.WriteString(strings.Repeat("    |", level))

		wp := node.WorldPosition()
		floatTruncation := 2
		wpStr := "[" + strconv.FormatFloat(wp.X, 'f', floatTruncation, 64) + ", " + strconv.FormatFloat(wp.Y, 'f', floatTruncation, 64) + ", " + strconv.FormatFloat(wp.Z, 'f', floatTruncation, 64) + "]"

		if level > 0 {
			str.WriteString("-")
		}
		str.WriteString(" [" + prefix + "] " + node.Name() + " : " + wpStr + "\n")

		for _, child := range node.Children() {
			str.WriteString(printNode(child, level+1))
		}

		return str.String()
	}

	return printNode(node, 0)
}

// Get searches a node's hierarchy using a string to find a specified node. The path is in the format of names of nodes, separated by forward
// slashes ('/'), and is relative to the node you use to call Get. As an example of Get, if you had a bulb parented to a lamp, which was
// parented to a room, it would be found from the room's parent at "Room/Lamp/Bulb". Note also that you can use "../" to
// "go up one" in the hierarchy (so bulb.Get("../") would return the Lamp node).
func (node *Node) Get(path string) INode {

	split := []string{}

	for _, s := range strings.Split(path, `/`) {
		if len(strings.TrimSpace(s)) > 0 {
			split = append(split, strings.TrimSpace(s))
		}
	}

	var current INode = node

	for _, name := range split {

		if current == nil {
			return nil
		}

		if name == ".." {
			current = current.Parent()
			continue
		}

		var found INode
		for _, child := range current.Children() {
			if child.Name() == name {
				found = child
				break
			}
		}
		current = found

	}

	return current

}

// Path returns a string indicating the hierarchical path to get this Node from the root. The path returned will be absolute, such that
// passing it to Get() called on the root node will return this node. The path returned will not contain the root node's name.
func (node *Node) Path() string {

	if node.parent == nil {
		return ""
	}

	root := node.Root()
	parent := node.Parent()
	path := node.Name()

	for parent != nil && nodeOf(parent) != nodeOf(root) {
		path = parent.Name() + "/" + path
		parent = parent.Parent()
	}

	return path

}

// Root returns the root node in the tree by recursively traversing this node's hierarchy of
// parents upwards. If the node this is called on has no parent, this function returns the node itself.
func (node *Node) Root() INode {
	if node.parent == nil {
		return node
	}
	return node.parent.Root()
}
