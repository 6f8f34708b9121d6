package bonepath

import "armature-merge/internal/scene"

// Resolver finds the main-hierarchy counterpart of a merge-hierarchy bone.
// The mode applies to every lookup made through the same Resolver.
type Resolver struct {
	// IgnorePath matches by name anywhere under the main root instead of by
	// path relative to the merge root.
	IgnorePath bool
}

// Resolve returns bone's counterpart under mainRoot, or nil.
func (r Resolver) Resolve(bone, mergeRoot, mainRoot *scene.Node) *scene.Node {
	if bone == nil {
		return nil
	}

	if r.IgnorePath {
		return ResolveByName(mainRoot, bone.Name)
	}

	p, ok := PathTo(bone, mergeRoot)
	if !ok {
		return nil
	}

	return ResolveByPath(mainRoot, p)
}
