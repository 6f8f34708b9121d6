package armature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armature-merge/internal/scene"
	"armature-merge/internal/scene/scenetest"
)

func TestPrune_RemovesSupersededBone(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Hips/Leg")
	mergeRoot := scenetest.Tree(t, "Root2", "Hips/Leg/Foot")
	leg := scenetest.Get(t, mergeRoot, "Hips/Leg")
	foot := scenetest.Get(t, mergeRoot, "Hips/Leg/Foot")

	table, _ := classify(t, mainRoot, mergeRoot, []string{"Hips/Leg"}, nil)

	res := Prune(table, nil, nil, nil)

	assert.Equal(t, 1, res.Removed, "subtree is not counted separately")
	assert.True(t, leg.Destroyed())
	assert.True(t, foot.Destroyed())
	assert.False(t, scenetest.Get(t, mergeRoot, "Hips").Destroyed())
	assert.False(t, scenetest.Get(t, mainRoot, "Hips/Leg").Destroyed(), "main armature is never pruned")
}

func TestPrune_KeepsAncestorsOfRetainedBones(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Spine/Arm")
	mergeRoot := scenetest.Tree(t, "Root2", "Spine/Arm", "Spine/Cape/Tip")
	spine := scenetest.Get(t, mergeRoot, "Spine")
	arm := scenetest.Get(t, mergeRoot, "Spine/Arm")
	tip := scenetest.Get(t, mergeRoot, "Spine/Cape/Tip")

	table, _ := classify(t, mainRoot, mergeRoot, []string{"Spine", "Spine/Arm"}, nil)

	res := Prune(table, []*scene.Node{tip}, nil, nil)

	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, []*scene.Node{arm}, res.Destroyed)
	assert.False(t, spine.Destroyed())
	assert.False(t, tip.Destroyed())
}

func TestPrune_SkipsAlreadyDestroyed(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Hips/Spine/Chest")
	mergeRoot := scenetest.Tree(t, "Root2", "Hips/Spine/Chest")

	table, _ := classify(t, mainRoot, mergeRoot, []string{"Hips", "Hips/Spine", "Hips/Spine/Chest"}, nil)

	res := Prune(table, nil, nil, nil)

	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, []string{"Hips"}, names(res.Destroyed))
}

func TestPrune_KeepsReferencedBones(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root", "Hips/Spine")
	mergeRoot := scenetest.Tree(t, "Root2", "Hips/Spine")
	hips := scenetest.Get(t, mergeRoot, "Hips")
	spine := scenetest.Get(t, mergeRoot, "Hips/Spine")

	table, _ := classify(t, mainRoot, mergeRoot, []string{"Hips", "Hips/Spine"}, nil)

	// a mesh outside the merge still skins to the merge spine
	other := &scene.SkinnedMesh{Name: "Other", Bones: []*scene.Node{spine}}

	res := Prune(table, nil, []*scene.SkinnedMesh{other}, nil)

	assert.Zero(t, res.Removed)
	assert.False(t, hips.Destroyed())
	assert.False(t, spine.Destroyed())
}

func TestPrune_NeverDestroysAboveRetained(t *testing.T) {
	mainRoot := scenetest.Tree(t, "Root",
		"Hips/Spine/Chest/Neck/Head",
		"Hips/Spine/Chest/Arm.L/Hand.L",
		"Hips/Leg.L/Foot.L",
	)
	mergeRoot := scenetest.Tree(t, "Root2",
		"Hips/Spine/Chest/Neck/Head/Ear.L",
		"Hips/Spine/Chest/Arm.L/Hand.L",
		"Hips/Leg.L/Foot.L/Toe.L",
		"Hips/Tail/Tip",
	)

	matched := []string{
		"Hips", "Hips/Spine", "Hips/Spine/Chest", "Hips/Spine/Chest/Neck", "Hips/Spine/Chest/Neck/Head",
		"Hips/Spine/Chest/Arm.L", "Hips/Spine/Chest/Arm.L/Hand.L", "Hips/Leg.L", "Hips/Leg.L/Foot.L",
	}
	retainedPaths := []string{"Hips/Spine/Chest/Neck/Head/Ear.L", "Hips/Leg.L/Foot.L/Toe.L"}

	table, _ := classify(t, mainRoot, mergeRoot, matched, nil)

	var retained []*scene.Node
	for _, p := range retainedPaths {
		retained = append(retained, scenetest.Get(t, mergeRoot, p))
	}

	res := Prune(table, retained, nil, nil)
	require.NotZero(t, res.Removed)

	for _, v := range res.Destroyed {
		for _, r := range retained {
			assert.False(t, v.IsAncestorOf(r), "%s destroyed above retained %s", v.Name, r.Name)
		}
	}

	for _, r := range retained {
		assert.False(t, r.Destroyed(), r.Name)
	}

	assert.Equal(t, []string{"Arm.L"}, names(res.Destroyed))
}
