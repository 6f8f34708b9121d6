package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armature-merge/internal/scene"
)

const avatarScene = `
nodes:
  - name: Avatar
    children:
      - name: Armature
        children:
          - name: Hips
            position: [0, 0.9, 0]
            children:
              - name: Spine
                children:
                  - name: Chest
  - name: Outfit
    children:
      - name: Armature
        scale: [1, 1, 1]
        children:
          - name: Hips
            id: 0b6c1f8e-5d7e-4a53-9a0e-2f1e3b9b8c11
            children:
              - name: Spine
                rotation: [0, 0, 0, 1]
                children:
                  - name: Tail
                    follow:
                      source: Avatar/Armature/Hips
                      translation: [x, z]
meshes:
  - name: Shirt
    root_bone: Outfit/Armature/Hips
    bones:
      - 0b6c1f8e-5d7e-4a53-9a0e-2f1e3b9b8c11
      - Outfit/Armature/Hips/Spine
      - ~
      - Outfit/Armature/Hips/Spine
  - name: Tail
    bones: [Outfit/Armature/Hips/Spine/Tail]
`

func TestParseScene(t *testing.T) {
	sf, err := ParseScene([]byte(avatarScene))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, sf.Version)
	require.Len(t, sf.Nodes, 2)
	assert.Equal(t, "Avatar", sf.Nodes[0].Name)

	hips := sf.Nodes[0].Children[0].Children[0]
	assert.Equal(t, []float32{0, 0.9, 0}, hips.Position)

	tail := sf.Nodes[1].Children[0].Children[0].Children[0].Children[0]
	require.NotNil(t, tail.Follow)
	assert.Equal(t, "Avatar/Armature/Hips", tail.Follow.Source)
	assert.Equal(t, AxisMask(scene.AxisX|scene.AxisZ), *tail.Follow.Translation)

	// defaults
	assert.Equal(t, AxisMask(scene.AxisAll), *tail.Follow.Rotation)
	assert.InDelta(t, 1, *tail.Follow.Weight, 0)
	assert.True(t, *tail.Follow.Active)
	assert.True(t, *tail.Follow.Locked)

	require.Len(t, sf.Meshes, 2)
	assert.Equal(t, []string{
		"0b6c1f8e-5d7e-4a53-9a0e-2f1e3b9b8c11",
		"Outfit/Armature/Hips/Spine",
		"",
		"Outfit/Armature/Hips/Spine",
	}, sf.Meshes[0].Bones)
}

func TestParseScene_Invalid(t *testing.T) {
	_, err := ParseScene([]byte("nodes: [name: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scene YAML")

	_, err = ParseScene([]byte(`
nodes:
  - name: A
    follow:
      source: A
      rotation: xw
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid axis")
}

func TestParseJob(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected JobFile
	}{
		{
			name: "single mesh",
			yaml: `
main: Avatar/Armature
merge: Outfit/Armature
meshes: Shirt
extra_bones: move
remove_unused: true
`,
			expected: JobFile{
				Version:      CurrentVersion,
				Main:         "Avatar/Armature",
				Merge:        "Outfit/Armature",
				Meshes:       StringOrArray{"Shirt"},
				ExtraBones:   "move",
				RemoveUnused: true,
			},
		},
		{
			name: "mesh list",
			yaml: `
version: "1"
main: Avatar/Armature
merge: Outfit/Armature
meshes: [Shirt, Pants]
ignore_bone_path: true
`,
			expected: JobFile{
				Version:        "1",
				Main:           "Avatar/Armature",
				Merge:          "Outfit/Armature",
				Meshes:         StringOrArray{"Shirt", "Pants"},
				IgnoreBonePath: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jf, err := ParseJob([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *jf)
		})
	}
}

func TestLoadAndWriteScene(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(in, []byte(avatarScene), 0644))

	sf, err := LoadScene(in)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, WriteScene(sf, out))

	again, err := LoadScene(out)
	require.NoError(t, err)
	assert.Equal(t, sf, again)

	_, err = LoadScene(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scene file")

	_, err = LoadJob(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read job file")
}

func TestStringOrArray_Marshal(t *testing.T) {
	single, err := StringOrArray{"Shirt"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "Shirt", single)

	many, err := StringOrArray{"Shirt", "Pants"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"Shirt", "Pants"}, many)
}
