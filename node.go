package motion

import "github.com/hajimehoshi/ebiten/v2"

// nodeIDCounter is a plain counter (no atomic — motion is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a ready-made animation Target: a named box with a local transform,
// a size for percentage offsets, and an optional place in a parent/child
// hierarchy whose world transforms are composed from the local ones.
//
// Nodes are identified by pointer; two Nodes with equal fields are still
// distinct targets.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64

	// Extent, resolves "NN%" offsets.
	Width, Height float64

	// Metadata
	UserData any

	// Computed by UpdateTransforms
	worldTransform [6]float64
	transformDirty bool

	disposed bool
}

// NewNode creates a node of the given size with an identity transform.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Width:          width,
		Height:         height,
		worldTransform: identityTransform,
		transformDirty: true,
	}
}

// --- Target ---

// LocalTransform returns the flat local matrix composed from the node's
// transform fields.
func (n *Node) LocalTransform() [6]float64 {
	return composeAffine(n.X, n.Y, n.ScaleX, n.ScaleY, n.SkewX, n.SkewY, n.Rotation)
}

// TransformMatrix implements Target. Nodes always have a transform.
func (n *Node) TransformMatrix() ([]float64, bool) {
	m := n.LocalTransform()
	return m[:], true
}

// SetTransformMatrix implements Target. The string is decomposed into the
// node's transform fields; a malformed string leaves the node unchanged.
func (n *Node) SetTransformMatrix(transform string) {
	f, err := ParseTransform(transform)
	if err != nil {
		debugWarn("SetTransformMatrix on node %q: %v", n.Name, err)
		return
	}
	n.X, n.Y, n.ScaleX, n.ScaleY, n.SkewX, n.SkewY, n.Rotation = decomposeAffine(f)
	n.transformDirty = true
}

// Extent implements Target.
func (n *Node) Extent() (width, height float64) {
	return n.Width, n.Height
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetSkew sets the node's SkewX and SkewY (in radians) and marks it dirty.
func (n *Node) SetSkew(sx, sy float64) {
	n.SkewX = sx
	n.SkewY = sy
	n.transformDirty = true
}

// SetSize sets the node's extent.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// MarkDirty forces the world transform to be recomputed by the next
// UpdateTransforms. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- World transforms ---

// UpdateTransforms recomputes world transforms for this node and its
// descendants. The parent's world transform is taken as already current.
func (n *Node) UpdateTransforms() {
	parent := identityTransform
	if n.Parent != nil {
		parent = n.Parent.worldTransform
	}
	updateWorldTransform(n, parent, false)
}

// WorldTransform returns the world matrix as of the last UpdateTransforms.
func (n *Node) WorldTransform() [6]float64 {
	return n.worldTransform
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}

// GeoM returns the world transform as an ebiten.GeoM for drawing.
func (n *Node) GeoM() ebiten.GeoM {
	m := Matrix{flat: n.worldTransform}
	return m.GeoM()
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, n.LocalTransform())
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Animations on a disposed node
// stop on their next Update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
