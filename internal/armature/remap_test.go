package armature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armature-merge/internal/bonepath"
	"armature-merge/internal/diagnostic"
	"armature-merge/internal/scene"
	"armature-merge/internal/scene/scenetest"
)

func TestRemap_ByPath(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine/Arm")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine/Arm")

	m := mesh(t, "Shirt", mergeRoot, "Spine/Arm")
	mergeArm := m.Bones[0]

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Remapped)
	assert.Equal(t, 0, res.Unresolved)
	assert.Same(t, scenetest.Get(t, mainRoot, "Spine/Arm"), m.Bones[0])

	got, ok := res.Matches.Lookup(mergeArm)
	require.True(t, ok)
	assert.Same(t, m.Bones[0], got)
	assert.Zero(t, res.Unmatched.Len())
}

func TestRemap_SlotsAreIndependent(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine/Arm")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine/Arm", "Spine/Tail")

	m := mesh(t, "Shirt", mergeRoot, "Spine/Arm", "Spine/Tail", "Spine/Arm", "Spine/Tail", "Spine")
	tail := m.Bones[1]

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{}, nil, nil)
	require.NoError(t, err)

	require.Len(t, m.Bones, 5)
	mainArm := scenetest.Get(t, mainRoot, "Spine/Arm")
	assert.Equal(t, []*scene.Node{mainArm, tail, mainArm, tail, scenetest.Get(t, mainRoot, "Spine")}, m.Bones)

	assert.Equal(t, 3, res.Remapped, "counted per slot")
	assert.Equal(t, 2, res.Unresolved, "counted per slot")
	assert.Equal(t, 2, res.Matches.Len())
	assert.Equal(t, []*scene.Node{tail}, res.Unmatched.Nodes())
}

func TestRemap_RootBone(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Hips/Spine")
	mergeRoot := scenetest.Tree(t, "Root2", "Hips/Spine", "Hips/Tail")

	matched := &scene.SkinnedMesh{Name: "A", RootBone: scenetest.Get(t, mergeRoot, "Hips")}
	missing := &scene.SkinnedMesh{Name: "B", RootBone: scenetest.Get(t, mergeRoot, "Hips/Tail")}
	absent := &scene.SkinnedMesh{Name: "C"}

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{matched, missing, absent}, bonepath.Resolver{}, nil, nil)
	require.NoError(t, err)

	assert.Same(t, scenetest.Get(t, mainRoot, "Hips"), matched.RootBone)
	assert.Same(t, mainRoot, missing.RootBone, "unresolved root bone falls back to the main root")
	assert.Same(t, mainRoot, absent.RootBone)

	assert.Zero(t, res.Remapped, "root bones are not counted")
	assert.Zero(t, res.Unresolved)
	assert.Zero(t, res.Matches.Len())
}

func TestRemap_IgnorePath(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "A/Hand")
	mergeRoot := scenetest.Tree(t, "Root2", "B/Hand")

	m := mesh(t, "Glove", mergeRoot, "B/Hand")

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{IgnorePath: true}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Remapped)
	assert.Same(t, scenetest.Get(t, mainRoot, "A/Hand"), m.Bones[0])
}

func TestRemap_SharedBoneAcrossMeshes(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine/Tail")

	a := mesh(t, "A", mergeRoot, "Spine", "Spine/Tail")
	b := mesh(t, "B", mergeRoot, "Spine/Tail", "Spine")

	var diags diagnostic.Diagnostics

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{a, b}, bonepath.Resolver{}, &diags, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Remapped)
	assert.Equal(t, 2, res.Unresolved)
	assert.Equal(t, 1, res.Matches.Len())
	assert.Equal(t, 1, res.Unmatched.Len())
	assert.Len(t, diags.ByCode(diagnostic.CodeUnresolvedBone), 1, "reported once per bone")

	for _, n := range res.Unmatched.Nodes() {
		assert.False(t, res.Matches.Has(n))
	}
}

func TestRemap_SuggestsNearMisses(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Armature", "Hips/Spine/UpperArm.L")
	mergeRoot := scenetest.Tree(t, "Outfit", "Hips/Spine/mixamorig:LeftUpperArm")

	m := mesh(t, "Sleeve", mergeRoot, "Hips/Spine/mixamorig:LeftUpperArm")

	var diags diagnostic.Diagnostics

	_, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{}, &diags, nil)
	require.NoError(t, err)

	unresolved := diags.ByCode(diagnostic.CodeUnresolvedBone)
	require.Len(t, unresolved, 1)
	assert.Equal(t, "Sleeve", unresolved[0].Mesh)
	assert.Equal(t, "Hips/Spine/mixamorig:LeftUpperArm", unresolved[0].Bone)
	assert.Equal(t, []string{"UpperArm.L"}, unresolved[0].Suggestions)
}

func TestRemap_FlagsAmbiguousNearMisses(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Armature", "Hips/Glove", "Chest/Glove")
	mergeRoot := scenetest.Tree(t, "Outfit", "Hips/Spine/Glove")

	m := mesh(t, "Gloves", mergeRoot, "Hips/Spine/Glove")

	var diags diagnostic.Diagnostics

	_, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{}, &diags, nil)
	require.NoError(t, err)

	unresolved := diags.ByCode(diagnostic.CodeUnresolvedBone)
	require.Len(t, unresolved, 1)
	assert.Contains(t, unresolved[0].Message, "several bones match the name equally well")
	assert.Equal(t, []string{"Glove"}, unresolved[0].Suggestions)
}

func TestRemap_NilSlot(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine")

	m := &scene.SkinnedMesh{Name: "Broken", Bones: []*scene.Node{nil, scenetest.Get(t, mergeRoot, "Spine")}}

	var diags diagnostic.Diagnostics

	res, err := Remap(mainRoot, mergeRoot, []*scene.SkinnedMesh{m}, bonepath.Resolver{}, &diags, nil)
	require.NoError(t, err)

	assert.Nil(t, m.Bones[0])
	assert.Equal(t, 1, res.Remapped)
	assert.Zero(t, res.Unresolved)
	assert.Len(t, diags.ByCode(diagnostic.CodeNilBoneSlot), 1)
}

func TestRemap_ConfigErrors(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine")
	spine := scenetest.Get(t, mergeRoot, "Spine")

	tests := []struct {
		name     string
		main     *scene.Node
		merge    *scene.Node
		meshes   func() []*scene.SkinnedMesh
		expected error
	}{
		{"missing main root", nil, mergeRoot, func() []*scene.SkinnedMesh {
			return []*scene.SkinnedMesh{{Bones: []*scene.Node{spine}}}
		}, ErrMissingRoot},
		{"missing merge root", mainRoot, nil, func() []*scene.SkinnedMesh {
			return []*scene.SkinnedMesh{{Bones: []*scene.Node{spine}}}
		}, ErrMissingRoot},
		{"no meshes", mainRoot, mergeRoot, func() []*scene.SkinnedMesh {
			return nil
		}, ErrNoMeshes},
		{"nil mesh entry", mainRoot, mergeRoot, func() []*scene.SkinnedMesh {
			return []*scene.SkinnedMesh{{Bones: []*scene.Node{spine}}, nil}
		}, ErrNilMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meshes := tt.meshes()

			res, err := Remap(tt.main, tt.merge, meshes, bonepath.Resolver{}, nil, nil)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.expected)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)

			for _, m := range meshes {
				if m != nil {
					assert.Same(t, spine, m.Bones[0], "nothing is rewritten when inputs are rejected")
					assert.Nil(t, m.RootBone)
				}
			}
		})
	}
}
