package prism

// NodeCallbacks represents a set of callbacks to be called when a Node is reparented or cloned.
type NodeCallbacks struct {
	OnReparent func(node, oldParent, newParent INode) // A callback to be called whenever a Node is reparented (or unparented, in which case newParent is nil).
	OnClone    func(newNode INode)                    // A callback to be called on the new Node whenever a Node is cloned.
}

// Clone returns a copy of the callbacks; the functions themselves are shared.
func (cb *NodeCallbacks) Clone() *NodeCallbacks {
	if cb == nil {
		return &NodeCallbacks{}
	}
	newCB := *cb
	return &newCB
}

func (cb *NodeCallbacks) runOnClone(newNode INode) {
	if cb != nil && cb.OnClone != nil {
		cb.OnClone(newNode)
	}
}

func (cb *NodeCallbacks) runOnReparent(node, oldParent, newParent INode) {
	if cb != nil && cb.OnReparent != nil {
		cb.OnReparent(node, oldParent, newParent)
	}
}
