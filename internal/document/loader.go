package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"armature-merge/internal/scene"
)

// CurrentVersion is written to every document this package produces.
const CurrentVersion = "1"

// LoadScene reads and parses a scene document.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	return ParseScene(data)
}

// ParseScene parses YAML data into a SceneFile.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile

	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if sf.Version == "" {
		sf.Version = CurrentVersion
	}

	for i := range sf.Nodes {
		applyNodeDefaults(&sf.Nodes[i])
	}

	return &sf, nil
}

// applyNodeDefaults fills follow constraint fields left out of the document.
func applyNodeDefaults(n *NodeDoc) {
	if f := n.Follow; f != nil {
		one := float32(1)
		yes := true

		if f.Weight == nil {
			f.Weight = &one
		}

		if f.SourceWeight == nil {
			f.SourceWeight = &one
		}

		if f.Active == nil {
			f.Active = &yes
		}

		if f.Locked == nil {
			f.Locked = &yes
		}

		if f.Translation == nil {
			all := AxisMask(scene.AxisAll)
			f.Translation = &all
		}

		if f.Rotation == nil {
			all := AxisMask(scene.AxisAll)
			f.Rotation = &all
		}
	}

	for i := range n.Children {
		applyNodeDefaults(&n.Children[i])
	}
}

// LoadJob reads and parses a job file.
func LoadJob(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	return ParseJob(data)
}

// ParseJob parses YAML data into a JobFile.
func ParseJob(data []byte) (*JobFile, error) {
	var jf JobFile

	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	if jf.Version == "" {
		jf.Version = CurrentVersion
	}

	return &jf, nil
}

// MarshalScene serializes a SceneFile to YAML.
func MarshalScene(sf *SceneFile) ([]byte, error) {
	return yaml.Marshal(sf)
}

// WriteScene writes a SceneFile to the given path.
func WriteScene(sf *SceneFile, path string) error {
	data, err := MarshalScene(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", path, err)
	}

	return nil
}
