package armature

import (
	"fmt"
	"log/slog"

	"armature-merge/internal/diagnostic"
	"armature-merge/internal/scene"
)

// Attachment records how an unmatched bone was attached to the main armature.
type Attachment struct {
	// Bone is the unmatched merge bone.
	Bone *scene.Node
	// Anchor is Bone's nearest matched ancestor in the merge armature.
	Anchor *scene.Node
	// Target is Anchor's counterpart in the main armature.
	Target *scene.Node
}

// UnmatchedResult is the outcome of ResolveUnmatched.
type UnmatchedResult struct {
	// Applied counts unmatched bones that found a matched ancestor.
	Applied     int
	Attachments []Attachment
	// Retained lists unmatched bones still inside the merge armature.
	Retained []*scene.Node
}

// ResolveUnmatched attaches every unmatched bone to the counterpart of its
// nearest matched ancestor.
//
// Ancestor chains are captured for all bones before anything moves, so the
// outcome does not depend on the order of the set. The walk stops below
// mergeRoot. Bones without a matched ancestor are left as they are.
func ResolveUnmatched(
	unmatched *UnmatchedSet,
	matches *MatchTable,
	mergeRoot *scene.Node,
	disposition Disposition,
	diags *diagnostic.Diagnostics,
	logger *slog.Logger,
) (*UnmatchedResult, error) {
	if !disposition.IsValid() {
		return nil, configError(ErrInvalidDisposition, "%s", disposition)
	}

	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	res := &UnmatchedResult{}

	if disposition == DispositionNone {
		res.Retained = append(res.Retained, unmatched.Nodes()...)
		return res, nil
	}

	chains := make([][]*scene.Node, unmatched.Len())
	for i, bone := range unmatched.Nodes() {
		chains[i] = ancestorChain(bone, mergeRoot)
	}

	for i, bone := range unmatched.Nodes() {
		anchor, target := nearestMatched(chains[i], matches)
		if anchor == nil {
			diags.AddInfo(diagnostic.CodeNoMatchedAncestor,
				"no matched ancestor, left in place", "", bone.Name)

			res.Retained = append(res.Retained, bone)

			continue
		}

		switch disposition {
		case DispositionReparent:
			if err := bone.SetParent(target); err != nil {
				diags.AddWarning(diagnostic.CodeReparentFailed,
					fmt.Sprintf("cannot move under %q: %v", target.Name, err), "", bone.Name)

				res.Retained = append(res.Retained, bone)

				continue
			}

		case DispositionFollow:
			if !anchor.AttachFollow(scene.NewFullFollow(target)) {
				diags.AddInfo(diagnostic.CodeFollowExists,
					"anchor already follows a bone, keeping the existing binding", "", anchor.Name)
			}

			res.Retained = append(res.Retained, bone)
		}

		res.Applied++
		res.Attachments = append(res.Attachments, Attachment{Bone: bone, Anchor: anchor, Target: target})

		logger.Debug("unmatched bone attached",
			slog.String("bone", bone.Name),
			slog.String("anchor", anchor.Name),
			slog.String("target", target.Name),
			slog.String("action", disposition.String()))
	}

	return res, nil
}

// ancestorChain lists bone's ancestors nearest first, stopping below mergeRoot.
func ancestorChain(bone, mergeRoot *scene.Node) []*scene.Node {
	if bone == mergeRoot {
		return nil
	}

	var chain []*scene.Node

	for p := bone.Parent(); p != nil && p != mergeRoot; p = p.Parent() {
		chain = append(chain, p)
	}

	return chain
}

func nearestMatched(chain []*scene.Node, matches *MatchTable) (anchor, target *scene.Node) {
	for _, a := range chain {
		if t, ok := matches.Lookup(a); ok {
			return a, t
		}
	}

	return nil, nil
}
