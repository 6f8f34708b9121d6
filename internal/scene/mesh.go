package scene

// SkinnedMesh binds mesh vertices to bones.
// Bones holds one entry per skin-weight slot; the same node may appear in
// several slots and each slot is independent.
type SkinnedMesh struct {
	Name     string
	RootBone *Node
	Bones    []*Node
}

// BoundTo reports whether the mesh references any node inside root's subtree
// (root included).
func (m *SkinnedMesh) BoundTo(root *Node) bool {
	inside := func(n *Node) bool {
		return n != nil && (n == root || root.IsAncestorOf(n))
	}

	if inside(m.RootBone) {
		return true
	}

	for _, b := range m.Bones {
		if inside(b) {
			return true
		}
	}

	return false
}
