package scene

import (
	"errors"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var (
	// ErrCycle is returned when a reparent would make a node its own ancestor.
	ErrCycle = errors.New("node cannot be parented under itself or its descendants")
	// ErrDestroyed is returned when a destroyed node takes part in a hierarchy change.
	ErrDestroyed = errors.New("node has been destroyed")
)

// Node is a named transform in a hierarchy.
// Names are not unique; identity is the pointer (and ID for documents).
type Node struct {
	// ID is a stable identifier used when the scene is written to disk.
	ID uuid.UUID
	// Name is the lookup key for path and name resolution.
	Name string

	// Position, Rotation and Scale describe the transform relative to the parent.
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	// Follow is the positional-follow binding attached to this node, if any.
	Follow *FollowConstraint

	parent    *Node
	children  []*Node
	destroyed bool
}

// NewNode creates a detached node with an identity transform and a fresh ID.
func NewNode(name string) *Node {
	return &Node{
		ID:       uuid.New(),
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Parent returns the owning node, or nil for a top-level node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the owned children in order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Destroyed reports whether the node (or one of its former ancestors) was destroyed.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// Root returns the topmost ancestor of n (n itself when detached).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}

	return r
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}

	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}

	return false
}

// AddChild appends child under n keeping the child's local transform.
// It is meant for building hierarchies; use SetParent to move a node
// without changing where it sits in the world.
func (n *Node) AddChild(child *Node) error {
	return child.attach(n, false)
}

// SetParent moves n under parent (nil detaches it) and recomputes the local
// transform so the world pose stays unchanged.
func (n *Node) SetParent(parent *Node) error {
	return n.attach(parent, true)
}

func (n *Node) attach(parent *Node, keepWorld bool) error {
	if n.destroyed || (parent != nil && parent.destroyed) {
		return ErrDestroyed
	}

	if parent == n.parent {
		return nil
	}

	if parent == n || n.IsAncestorOf(parent) {
		return ErrCycle
	}

	world := n.WorldMatrix()

	n.detach()

	if parent != nil {
		parent.children = append(parent.children, n)
		n.parent = parent
	}

	if !keepWorld {
		return nil
	}

	local := world
	if parent != nil {
		local = parent.WorldMatrix().Inv().Mul4(world)
	}

	n.setLocalMatrix(local)

	return nil
}

// detach unlinks n from its parent's children.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}

	siblings := n.parent.children
	if i := slices.Index(siblings, n); i >= 0 {
		n.parent.children = slices.Delete(siblings, i, i+1)
	}

	n.parent = nil
}

// Destroy detaches n and marks it and its whole subtree destroyed.
// Destroying an already destroyed node is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}

	n.detach()
	n.Walk(func(d *Node) bool {
		d.destroyed = true
		return true
	})
}

// Walk visits n and its descendants in pre-order.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	stack := []*Node{n}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(cur) {
			return
		}

		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// LocalMatrix returns translation * rotation * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := n.Rotation.Normalize().Mat4()
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())

	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the transform from n's local space to world space.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}

	return m
}

// setLocalMatrix decomposes m into position, rotation and scale.
// Shear from non-uniform parent scale is dropped.
func (n *Node) setLocalMatrix(m mgl32.Mat4) {
	n.Position = m.Col(3).Vec3()

	c0, c1, c2 := m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()
	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()

	if m.Det() < 0 {
		sx = -sx
	}

	n.Scale = mgl32.Vec3{sx, sy, sz}

	if sx == 0 || sy == 0 || sz == 0 {
		n.Rotation = mgl32.QuatIdent()
		return
	}

	rot := mgl32.Mat4FromCols(
		c0.Mul(1/sx).Vec4(0),
		c1.Mul(1/sy).Vec4(0),
		c2.Mul(1/sz).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	n.Rotation = mgl32.Mat4ToQuat(rot).Normalize()
}
