package document

// SceneFile is the root of a scene document.
type SceneFile struct {
	// Version of the document schema.
	Version string `yaml:"version,omitempty"`
	// Nodes are the top-level hierarchies.
	Nodes []NodeDoc `yaml:"nodes"`
	// Meshes are the skinned meshes bound to nodes of the hierarchies.
	Meshes []MeshDoc `yaml:"meshes,omitempty"`
}

// NodeDoc describes one node and its children.
type NodeDoc struct {
	Name string `yaml:"name"`
	// ID is a uuid; one is generated when empty.
	ID string `yaml:"id,omitempty"`

	// Position is x, y, z. Defaults to the origin.
	Position []float32 `yaml:"position,omitempty,flow"`
	// Rotation is a quaternion x, y, z, w. Defaults to identity.
	Rotation []float32 `yaml:"rotation,omitempty,flow"`
	// Scale is x, y, z. Defaults to 1, 1, 1.
	Scale []float32 `yaml:"scale,omitempty,flow"`

	Follow   *FollowDoc `yaml:"follow,omitempty"`
	Children []NodeDoc  `yaml:"children,omitempty"`
}

// FollowDoc describes a positional-follow constraint on a node.
type FollowDoc struct {
	// Source is a reference to the followed node.
	Source       string   `yaml:"source"`
	SourceWeight *float32 `yaml:"source_weight,omitempty"`

	Active      *bool     `yaml:"active,omitempty"`
	Weight      *float32  `yaml:"weight,omitempty"`
	Locked      *bool     `yaml:"locked,omitempty"`
	Translation *AxisMask `yaml:"translation,omitempty"`
	Rotation    *AxisMask `yaml:"rotation,omitempty"`
}

// MeshDoc describes a skinned mesh.
type MeshDoc struct {
	Name string `yaml:"name"`
	// RootBone is a reference; empty means no root bone.
	RootBone string `yaml:"root_bone,omitempty"`
	// Bones holds one reference per skin-weight slot; empty entries are empty slots.
	Bones []string `yaml:"bones"`
}

// JobFile configures one merge.
type JobFile struct {
	Version string `yaml:"version,omitempty"`

	// Main references the main armature root.
	Main string `yaml:"main"`
	// Merge references the armature root being merged.
	Merge string `yaml:"merge"`
	// Meshes names the meshes to merge. Empty selects every mesh bound to Merge.
	Meshes StringOrArray `yaml:"meshes,omitempty"`

	// ExtraBones is the unmatched bone action: none, reparent or follow.
	ExtraBones     string `yaml:"extra_bones,omitempty"`
	RemoveUnused   bool   `yaml:"remove_unused,omitempty"`
	IgnoreBonePath bool   `yaml:"ignore_bone_path,omitempty"`
}
