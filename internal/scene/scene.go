package scene

import "github.com/google/uuid"

// Scene holds the top-level nodes and the skinned meshes bound to them.
type Scene struct {
	Roots  []*Node
	Meshes []*SkinnedMesh
}

// TopLevel returns the live roots, skipping ones that were destroyed or
// have since been parented under another node.
func (s *Scene) TopLevel() []*Node {
	var out []*Node

	for _, r := range s.Roots {
		if !r.Destroyed() && r.Parent() == nil {
			out = append(out, r)
		}
	}

	return out
}

// Walk visits every live node of every top-level hierarchy in pre-order.
func (s *Scene) Walk(fn func(*Node) bool) {
	stop := false

	for _, r := range s.TopLevel() {
		r.Walk(func(n *Node) bool {
			if !fn(n) {
				stop = true
				return false
			}

			return true
		})

		if stop {
			return
		}
	}
}

// FindByID returns the live node with the given ID, or nil.
func (s *Scene) FindByID(id uuid.UUID) *Node {
	var found *Node

	s.Walk(func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}

		return true
	})

	return found
}

// FollowSources returns the source of every follow constraint on a live
// node, in walk order and without duplicates.
func (s *Scene) FollowSources() []*Node {
	var out []*Node

	seen := make(map[*Node]struct{})

	s.Walk(func(n *Node) bool {
		if n.Follow == nil || n.Follow.Source == nil {
			return true
		}

		if _, dup := seen[n.Follow.Source]; !dup {
			seen[n.Follow.Source] = struct{}{}
			out = append(out, n.Follow.Source)
		}

		return true
	})

	return out
}

// Mesh returns the first mesh with the given name, or nil.
func (s *Scene) Mesh(name string) *SkinnedMesh {
	for _, m := range s.Meshes {
		if m.Name == name {
			return m
		}
	}

	return nil
}
