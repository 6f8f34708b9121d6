// Package scenetest builds small hierarchies for tests.
package scenetest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"armature-merge/internal/scene"
)

// Tree builds a hierarchy under a new node named root.
// Each path is slash separated and relative to root; missing intermediate
// nodes are created, existing ones are reused by first name match.
func Tree(t testing.TB, root string, paths ...string) *scene.Node {
	t.Helper()

	r := scene.NewNode(root)
	for _, p := range paths {
		Add(t, r, p)
	}

	return r
}

// Add creates the nodes along path under root and returns the last one.
// The last segment is always a new node, so duplicate names can be built.
func Add(t testing.TB, root *scene.Node, path string) *scene.Node {
	t.Helper()

	segments := strings.Split(path, "/")
	cur := root

	for i, seg := range segments {
		var next *scene.Node

		if i < len(segments)-1 {
			for _, c := range cur.Children() {
				if c.Name == seg {
					next = c
					break
				}
			}
		}

		if next == nil {
			next = scene.NewNode(seg)
			require.NoError(t, cur.AddChild(next))
		}

		cur = next
	}

	return cur
}

// Get returns the node at path under root, failing the test if it is missing.
func Get(t testing.TB, root *scene.Node, path string) *scene.Node {
	t.Helper()

	cur := root
	for _, seg := range strings.Split(path, "/") {
		var next *scene.Node

		for _, c := range cur.Children() {
			if c.Name == seg {
				next = c
				break
			}
		}

		require.NotNil(t, next, "missing %q under %q", seg, cur.Name)
		cur = next
	}

	return cur
}
