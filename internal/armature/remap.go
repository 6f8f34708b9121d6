package armature

import (
	"fmt"
	"log/slog"

	"armature-merge/internal/bonepath"
	"armature-merge/internal/diagnostic"
	"armature-merge/internal/match"
	"armature-merge/internal/scene"
)

// RemapResult is the outcome of Remap.
type RemapResult struct {
	Matches   *MatchTable
	Unmatched *UnmatchedSet
	// Remapped counts rewritten bone slots.
	Remapped int
	// Unresolved counts bone slots left on their original bone.
	Unresolved int
}

// Remap points every mesh's root bone and bone slots at their counterparts
// under mainRoot.
//
// A root bone without a counterpart falls back to mainRoot. A bone slot
// without one keeps its original bone, and that bone joins the unmatched
// set. Counters are per slot, so a bone used by several slots counts once
// for each. Nothing is modified if the inputs are rejected.
func Remap(
	mainRoot, mergeRoot *scene.Node,
	meshes []*scene.SkinnedMesh,
	resolver bonepath.Resolver,
	diags *diagnostic.Diagnostics,
	logger *slog.Logger,
) (*RemapResult, error) {
	if err := validateInputs(mainRoot, mergeRoot, meshes); err != nil {
		return nil, err
	}

	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	res := &RemapResult{
		Matches:   NewMatchTable(),
		Unmatched: NewUnmatchedSet(),
	}

	for _, mesh := range meshes {
		var root *scene.Node
		if mesh.RootBone != nil {
			root = resolver.Resolve(mesh.RootBone, mergeRoot, mainRoot)
		}

		if root == nil {
			root = mainRoot
		}

		mesh.RootBone = root

		for slot, bone := range mesh.Bones {
			if bone == nil {
				diags.AddWarning(diagnostic.CodeNilBoneSlot,
					fmt.Sprintf("bone slot %d is empty", slot), mesh.Name, "")

				continue
			}

			found := resolver.Resolve(bone, mergeRoot, mainRoot)
			if found == nil {
				res.Unresolved++

				if res.Unmatched.Add(bone) {
					reportUnresolved(bone, mergeRoot, mainRoot, mesh.Name, diags)
					logger.Debug("bone has no counterpart",
						slog.String("mesh", mesh.Name),
						slog.String("bone", bone.Name))
				}

				continue
			}

			mesh.Bones[slot] = found
			res.Remapped++

			res.Matches.Add(bone, found)
		}

		logger.Debug("mesh remapped",
			slog.String("mesh", mesh.Name),
			slog.String("root_bone", mesh.RootBone.Name),
			slog.Int("slots", len(mesh.Bones)))
	}

	return res, nil
}

func reportUnresolved(bone, mergeRoot, mainRoot *scene.Node, mesh string, diags *diagnostic.Diagnostics) {
	label := bone.Name
	if p, ok := bonepath.PathTo(bone, mergeRoot); ok {
		label = p.String()
	}

	msg := "no counterpart in the main armature"

	candidates := match.RankCandidates(bone.Name, mainRoot).AboveThreshold(match.DefaultMinScore)
	if candidates.IsAmbiguous(match.DefaultAmbiguityMargin) {
		msg += "; several bones match the name equally well"
	}

	diags.AddInfo(diagnostic.CodeUnresolvedBone, msg, mesh, label,
		candidates.Names(match.DefaultMaxSuggestions, match.DefaultMinScore)...)
}

func validateInputs(mainRoot, mergeRoot *scene.Node, meshes []*scene.SkinnedMesh) error {
	if mainRoot == nil || mergeRoot == nil {
		return &ConfigError{Reason: ErrMissingRoot}
	}

	if len(meshes) == 0 {
		return &ConfigError{Reason: ErrNoMeshes}
	}

	for i, m := range meshes {
		if m == nil {
			return configError(ErrNilMesh, "entry %d", i)
		}
	}

	return nil
}
