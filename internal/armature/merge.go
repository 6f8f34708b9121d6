package armature

import (
	"fmt"
	"log/slog"
	"slices"

	"armature-merge/internal/bonepath"
	"armature-merge/internal/diagnostic"
	"armature-merge/internal/scene"
)

// Report summarizes a merge.
type Report struct {
	// Remapped counts bone slots pointed at a main-armature bone.
	Remapped int
	// Unmatched counts bone slots left on their original bone.
	Unmatched int
	// ExtraActions counts unmatched bones reparented or bound by a follow constraint.
	ExtraActions int
	// Removed counts destroyed merge bones.
	Removed int

	Matches        *MatchTable
	UnmatchedBones []*scene.Node
	Attachments    []Attachment
	Destroyed      []*scene.Node

	// ScaleMismatch is set when the two roots have different local scales.
	ScaleMismatch bool
	Diagnostics   diagnostic.Diagnostics
}

// String returns the one-line summary.
func (r *Report) String() string {
	return fmt.Sprintf("Armature merged (%d remapped, %d unmatched, %d extra, %d removed)",
		r.Remapped, r.Unmatched, r.ExtraActions, r.Removed)
}

// Merge remaps meshes from the mergeRoot armature onto the mainRoot armature,
// then applies the unmatched-bone disposition and optional pruning.
// A *ConfigError is returned, and nothing is modified, when the inputs are
// unusable.
func Merge(mainRoot, mergeRoot *scene.Node, meshes []*scene.SkinnedMesh, opts Options) (*Report, error) {
	logger := opts.logger()

	if !opts.Disposition.IsValid() {
		return nil, configError(ErrInvalidDisposition, "%s", opts.Disposition)
	}

	if err := validateInputs(mainRoot, mergeRoot, meshes); err != nil {
		return nil, err
	}

	report := &Report{}

	if mainRoot.Scale != mergeRoot.Scale {
		report.ScaleMismatch = true
		report.Diagnostics.AddWarning(diagnostic.CodeScaleMismatch,
			fmt.Sprintf("armature scales are not equal (%v vs %v), scaling issues may occur",
				mainRoot.Scale, mergeRoot.Scale), "", "")
		logger.Warn("armature scales differ",
			slog.Any("main", mainRoot.Scale),
			slog.Any("merge", mergeRoot.Scale))
	}

	resolver := bonepath.Resolver{IgnorePath: opts.IgnorePath}

	remap, err := Remap(mainRoot, mergeRoot, meshes, resolver, &report.Diagnostics, logger)
	if err != nil {
		return nil, err
	}

	report.Remapped = remap.Remapped
	report.Unmatched = remap.Unresolved
	report.Matches = remap.Matches
	report.UnmatchedBones = remap.Unmatched.Nodes()

	unmatched, err := ResolveUnmatched(remap.Unmatched, remap.Matches, mergeRoot, opts.Disposition,
		&report.Diagnostics, logger)
	if err != nil {
		return nil, err
	}

	report.ExtraActions = unmatched.Applied
	report.Attachments = unmatched.Attachments

	if opts.RemoveUnused {
		keep := append(slices.Clone(unmatched.Retained), opts.Keep...)

		pruned := Prune(remap.Matches, keep, meshes, logger)
		report.Removed = pruned.Removed
		report.Destroyed = pruned.Destroyed
	}

	logger.Info("armature merged",
		slog.Int("remapped", report.Remapped),
		slog.Int("unmatched", report.Unmatched),
		slog.Int("extra", report.ExtraActions),
		slog.Int("removed", report.Removed),
		slog.String("extra_bones", opts.Disposition.String()),
		slog.Bool("ignore_path", opts.IgnorePath))

	return report, nil
}
