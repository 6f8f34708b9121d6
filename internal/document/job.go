package document

import (
	"fmt"

	"armature-merge/internal/armature"
	"armature-merge/internal/diagnostic"
	"armature-merge/internal/scene"
)

// Plan is a job resolved against a scene, ready for armature.Merge.
type Plan struct {
	MainRoot  *scene.Node
	MergeRoot *scene.Node
	Meshes    []*scene.SkinnedMesh
	Options   armature.Options
}

// Plan resolves the job against sc. The error joins every problem found.
func (j *JobFile) Plan(sc *scene.Scene) (*Plan, error) {
	p, diags := j.plan(sc)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	return p, nil
}

// Validate resolves the job against sc and returns every finding.
func (j *JobFile) Validate(sc *scene.Scene) diagnostic.Diagnostics {
	_, diags := j.plan(sc)
	return diags
}

func (j *JobFile) plan(sc *scene.Scene) (*Plan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	p := &Plan{
		MainRoot:  j.root(sc, "main", j.Main, &diags),
		MergeRoot: j.root(sc, "merge", j.Merge, &diags),
	}

	disposition, err := armature.ParseDisposition(j.ExtraBones)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidJob, err.Error(), "", "")
	}

	p.Options = armature.Options{
		Disposition:  disposition,
		RemoveUnused: j.RemoveUnused,
		IgnorePath:   j.IgnoreBonePath,
		Keep:         sc.FollowSources(),
	}

	if p.MainRoot != nil && p.MergeRoot != nil {
		switch {
		case p.MainRoot == p.MergeRoot:
			diags.AddError(diagnostic.CodeInvalidJob, "main and merge armatures are the same node", "", j.Main)
		case p.MainRoot.IsAncestorOf(p.MergeRoot):
			diags.AddWarning(diagnostic.CodeInvalidJob,
				"merge armature is inside the main armature; name matching may pick merge bones", "", j.Merge)
		case p.MergeRoot.IsAncestorOf(p.MainRoot):
			diags.AddWarning(diagnostic.CodeInvalidJob,
				"main armature is inside the merge armature; pruning may remove main bones", "", j.Main)
		}
	}

	if len(j.Meshes) > 0 {
		for _, name := range j.Meshes {
			m := sc.Mesh(name)
			if m == nil {
				diags.AddError(diagnostic.CodeInvalidJob, "mesh not found", name, "")
				continue
			}

			p.Meshes = append(p.Meshes, m)
		}
	} else if p.MergeRoot != nil {
		for _, m := range sc.Meshes {
			if m.BoundTo(p.MergeRoot) {
				p.Meshes = append(p.Meshes, m)
			}
		}

		if len(p.Meshes) == 0 {
			diags.AddError(diagnostic.CodeInvalidJob, "no mesh is bound to the merge armature", "", j.Merge)
		}
	}

	return p, diags
}

func (j *JobFile) root(sc *scene.Scene, field, ref string, diags *diagnostic.Diagnostics) *scene.Node {
	if ref == "" {
		diags.AddError(diagnostic.CodeInvalidJob, field+" armature root is required", "", "")
		return nil
	}

	n := ResolveRef(sc, ref)
	if n == nil {
		diags.AddError(diagnostic.CodeDanglingReference, field+" armature root not found", "", ref)
	}

	return n
}
