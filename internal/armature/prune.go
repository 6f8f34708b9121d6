package armature

import (
	"log/slog"

	"armature-merge/internal/scene"
)

// PruneResult is the outcome of Prune.
type PruneResult struct {
	// Removed counts destroyed bones; their subtrees are not counted.
	Removed   int
	Destroyed []*scene.Node
}

// Prune destroys the merge bones that were superseded by a counterpart.
//
// A matched merge bone is kept when its subtree still holds a node of keep
// (retained unmatched bones, follow sources), or when it or a descendant is
// still referenced by a mesh.
// Bones already destroyed along with an ancestor are skipped.
func Prune(
	matches *MatchTable,
	keep []*scene.Node,
	meshes []*scene.SkinnedMesh,
	logger *slog.Logger,
) *PruneResult {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	held := make(map[*scene.Node]struct{}, len(keep))
	for _, n := range keep {
		held[n] = struct{}{}
	}

	for _, m := range meshes {
		if m.RootBone != nil {
			held[m.RootBone] = struct{}{}
		}

		for _, b := range m.Bones {
			if b != nil {
				held[b] = struct{}{}
			}
		}
	}

	res := &PruneResult{}

	for _, pair := range matches.Pairs() {
		bone := pair.Merge
		if bone.Destroyed() || holdsAny(bone, held) {
			continue
		}

		bone.Destroy()

		res.Removed++
		res.Destroyed = append(res.Destroyed, bone)

		logger.Debug("unused bone removed", slog.String("bone", bone.Name))
	}

	return res
}

// holdsAny reports whether root or any node below it is in set.
func holdsAny(root *scene.Node, set map[*scene.Node]struct{}) bool {
	found := false

	root.Walk(func(n *scene.Node) bool {
		if _, ok := set[n]; ok {
			found = true
			return false
		}

		return true
	})

	return found
}
