package document

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"armature-merge/internal/diagnostic"
	"armature-merge/internal/scene"
)

type pendingFollow struct {
	node *scene.Node
	doc  *FollowDoc
	path string
}

type builder struct {
	sc      *scene.Scene
	ids     map[uuid.UUID]string
	follows []pendingFollow
	diags   diagnostic.Diagnostics
}

// Build converts a scene document into a scene graph.
// Every problem found is collected; the returned error joins the errors.
// Warnings are returned even when the build succeeds.
func Build(sf *SceneFile) (*scene.Scene, diagnostic.Diagnostics, error) {
	b := &builder{
		sc:  &scene.Scene{},
		ids: make(map[uuid.UUID]string),
	}

	for i := range sf.Nodes {
		if n := b.node(&sf.Nodes[i], ""); n != nil {
			b.sc.Roots = append(b.sc.Roots, n)
		}
	}

	for _, f := range b.follows {
		b.follow(f)
	}

	for i := range sf.Meshes {
		b.mesh(&sf.Meshes[i])
	}

	if err := b.diags.Error(); err != nil {
		return nil, b.diags, fmt.Errorf("invalid scene document: %w", err)
	}

	return b.sc, b.diags, nil
}

func (b *builder) node(doc *NodeDoc, parentPath string) *scene.Node {
	path := doc.Name
	if parentPath != "" {
		path = parentPath + "/" + doc.Name
	}

	if doc.Name == "" {
		b.diags.AddError(diagnostic.CodeInvalidDocument, "node name is required", "", path)
	} else if strings.Contains(doc.Name, "/") {
		b.diags.AddWarning(diagnostic.CodeInvalidDocument,
			"name contains '/', reference this node by id", "", path)
	}

	n := scene.NewNode(doc.Name)

	if doc.ID != "" {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			b.diags.AddError(diagnostic.CodeInvalidDocument, fmt.Sprintf("invalid id %q: %v", doc.ID, err), "", path)
		} else if prev, dup := b.ids[id]; dup {
			b.diags.AddError(diagnostic.CodeInvalidDocument, fmt.Sprintf("id %s already used by %s", id, prev), "", path)
		} else {
			n.ID = id
		}
	}

	b.ids[n.ID] = path

	if v, ok := b.vector(doc.Position, 3, "position", path); ok && v != nil {
		n.Position = mgl32.Vec3{v[0], v[1], v[2]}
	}

	if v, ok := b.vector(doc.Rotation, 4, "rotation", path); ok && v != nil {
		n.Rotation = mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}.Normalize()
	}

	if v, ok := b.vector(doc.Scale, 3, "scale", path); ok && v != nil {
		n.Scale = mgl32.Vec3{v[0], v[1], v[2]}
	}

	if doc.Follow != nil {
		b.follows = append(b.follows, pendingFollow{node: n, doc: doc.Follow, path: path})
	}

	for i := range doc.Children {
		child := b.node(&doc.Children[i], path)
		if err := n.AddChild(child); err != nil {
			b.diags.AddError(diagnostic.CodeInvalidDocument, err.Error(), "", path)
		}
	}

	return n
}

// vector checks an optional vector field; nil means the default applies.
func (b *builder) vector(v []float32, size int, field, path string) ([]float32, bool) {
	if len(v) == 0 {
		return nil, true
	}

	if len(v) != size {
		b.diags.AddError(diagnostic.CodeInvalidDocument,
			fmt.Sprintf("%s needs %d components, got %d", field, size, len(v)), "", path)

		return nil, false
	}

	return v, true
}

func (b *builder) follow(f pendingFollow) {
	src := ResolveRef(b.sc, f.doc.Source)
	if src == nil {
		b.diags.AddError(diagnostic.CodeDanglingReference,
			fmt.Sprintf("follow source %q not found", f.doc.Source), "", f.path)

		return
	}

	c := scene.NewFullFollow(src)

	if f.doc.Weight != nil {
		c.Weight = *f.doc.Weight
	}

	if f.doc.SourceWeight != nil {
		c.SourceWeight = *f.doc.SourceWeight
	}

	if f.doc.Locked != nil {
		c.Locked = *f.doc.Locked
	}

	if f.doc.Active != nil {
		c.Active = *f.doc.Active
	}

	if f.doc.Translation != nil {
		c.TranslationAxes = scene.Axis(*f.doc.Translation)
	}

	if f.doc.Rotation != nil {
		c.RotationAxes = scene.Axis(*f.doc.Rotation)
	}

	f.node.Follow = c
}

func (b *builder) mesh(doc *MeshDoc) {
	if doc.Name == "" {
		b.diags.AddError(diagnostic.CodeInvalidDocument, "mesh name is required", "", "")
	}

	m := &scene.SkinnedMesh{Name: doc.Name}

	if doc.RootBone != "" {
		m.RootBone = b.ref(doc.RootBone, doc.Name)
	}

	m.Bones = make([]*scene.Node, len(doc.Bones))
	for i, ref := range doc.Bones {
		if ref != "" {
			m.Bones[i] = b.ref(ref, doc.Name)
		}
	}

	b.sc.Meshes = append(b.sc.Meshes, m)
}

func (b *builder) ref(ref, mesh string) *scene.Node {
	n := ResolveRef(b.sc, ref)
	if n == nil {
		b.diags.AddError(diagnostic.CodeDanglingReference, "reference not found", mesh, ref)
	}

	return n
}
