package bonepath

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"armature-merge/internal/scene"
)

// Separator joins path segments in the textual form.
const Separator = "/"

// Path is the sequence of node names from the first child of an ancestor
// down to a node.
type Path []string

// String returns the segments joined by Separator.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Parse splits a textual path such as "Hips/Spine/Chest".
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, errors.New("empty path")
	}

	segments := strings.Split(s, Separator)
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}
	}

	return Path(segments), nil
}

// PathTo returns node's path relative to ancestor.
// It reports false if node is ancestor itself or is not below it.
func PathTo(node, ancestor *scene.Node) (Path, bool) {
	if node == nil || ancestor == nil || node == ancestor {
		return nil, false
	}

	var names []string

	for cur := node; cur != nil; cur = cur.Parent() {
		names = append(names, cur.Name)

		if cur.Parent() == ancestor {
			slices.Reverse(names)
			return Path(names), true
		}
	}

	return nil, false
}

// ResolveByPath descends from root matching one segment per level.
// Returns nil for an empty path or a missing segment.
func ResolveByPath(root *scene.Node, p Path) *scene.Node {
	if root == nil || len(p) == 0 {
		return nil
	}

	cur := root
	for _, seg := range p {
		cur = childNamed(cur, seg)
		if cur == nil {
			return nil
		}
	}

	return cur
}

func childNamed(n *scene.Node, name string) *scene.Node {
	for _, c := range n.Children() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// ResolveByName returns the first descendant of root (root excluded) named
// name, in pre-order.
func ResolveByName(root *scene.Node, name string) *scene.Node {
	if root == nil {
		return nil
	}

	var found *scene.Node

	root.Walk(func(n *scene.Node) bool {
		if n != root && n.Name == name {
			found = n
			return false
		}

		return true
	})

	return found
}
