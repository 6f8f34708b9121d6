package document

import (
	"strings"

	"github.com/google/uuid"

	"armature-merge/internal/bonepath"
	"armature-merge/internal/scene"
)

// ResolveRef finds the node a reference points at, or nil.
// A reference is a node id or a slash path from a top-level node.
func ResolveRef(sc *scene.Scene, ref string) *scene.Node {
	if id, err := uuid.Parse(ref); err == nil {
		return sc.FindByID(id)
	}

	p, err := bonepath.Parse(ref)
	if err != nil {
		return nil
	}

	for _, top := range sc.TopLevel() {
		if top.Name != p[0] {
			continue
		}

		if len(p) == 1 {
			return top
		}

		return bonepath.ResolveByPath(top, p[1:])
	}

	return nil
}

// RefFor returns the reference to write for n: its path when the path
// resolves back to n, its id otherwise.
func RefFor(sc *scene.Scene, n *scene.Node) string {
	if n == nil {
		return ""
	}

	if p, ok := fullPath(n); ok && ResolveRef(sc, p.String()) == n {
		return p.String()
	}

	return n.ID.String()
}

// fullPath returns the path from n's top-level node down to n.
// It reports false when a name cannot be written in a path.
func fullPath(n *scene.Node) (bonepath.Path, bool) {
	root := n.Root()

	p := bonepath.Path{root.Name}
	if rel, ok := bonepath.PathTo(n, root); ok {
		p = append(p, rel...)
	}

	for _, name := range p {
		if name == "" || strings.Contains(name, bonepath.Separator) {
			return nil, false
		}
	}

	if _, err := uuid.Parse(p.String()); err == nil {
		return nil, false
	}

	return p, true
}
