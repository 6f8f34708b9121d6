package armature

import (
	"testing"

	"armature-merge/internal/scene"
	"armature-merge/internal/scene/scenetest"
)

// mesh builds a skinned mesh whose bone slots are the nodes at paths under root.
func mesh(t *testing.T, name string, root *scene.Node, paths ...string) *scene.SkinnedMesh {
	t.Helper()

	m := &scene.SkinnedMesh{Name: name}
	for _, p := range paths {
		m.Bones = append(m.Bones, scenetest.Get(t, root, p))
	}

	return m
}

func names(nodes []*scene.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}
