package document

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"armature-merge/internal/scene"
)

// Export converts a scene graph into a document. Every node gets its id;
// references are paths where a path is unambiguous.
func Export(sc *scene.Scene) *SceneFile {
	sf := &SceneFile{Version: CurrentVersion}

	for _, top := range sc.TopLevel() {
		sf.Nodes = append(sf.Nodes, exportNode(sc, top))
	}

	for _, m := range sc.Meshes {
		md := MeshDoc{
			Name:     m.Name,
			RootBone: RefFor(sc, m.RootBone),
			Bones:    make([]string, len(m.Bones)),
		}

		for i, b := range m.Bones {
			md.Bones[i] = RefFor(sc, b)
		}

		sf.Meshes = append(sf.Meshes, md)
	}

	return sf
}

func exportNode(sc *scene.Scene, n *scene.Node) NodeDoc {
	doc := NodeDoc{
		Name: n.Name,
		ID:   n.ID.String(),
	}

	if n.Position != (mgl32.Vec3{}) {
		doc.Position = slices.Clone(n.Position[:])
	}

	if !n.Rotation.ApproxEqual(mgl32.QuatIdent()) {
		doc.Rotation = []float32{n.Rotation.X(), n.Rotation.Y(), n.Rotation.Z(), n.Rotation.W}
	}

	if n.Scale != (mgl32.Vec3{1, 1, 1}) {
		doc.Scale = slices.Clone(n.Scale[:])
	}

	if c := n.Follow; c != nil && c.Source != nil {
		weight, sourceWeight, active, locked := c.Weight, c.SourceWeight, c.Active, c.Locked
		translation, rotation := AxisMask(c.TranslationAxes), AxisMask(c.RotationAxes)

		doc.Follow = &FollowDoc{
			Source:       RefFor(sc, c.Source),
			SourceWeight: &sourceWeight,
			Active:       &active,
			Weight:       &weight,
			Locked:       &locked,
			Translation:  &translation,
			Rotation:     &rotation,
		}
	}

	for _, child := range n.Children() {
		doc.Children = append(doc.Children, exportNode(sc, child))
	}

	return doc
}
