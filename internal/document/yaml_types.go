package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"armature-merge/internal/scene"
)

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array", node.Line)
	}
}

// MarshalYAML writes a single string when there is exactly one entry.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// AxisMask is a scene.Axis written as letters ("xyz") or a list ([x, z]).
type AxisMask scene.Axis

// UnmarshalYAML implements custom YAML unmarshaling for AxisMask.
func (a *AxisMask) UnmarshalYAML(node *yaml.Node) error {
	var letters string

	switch node.Kind {
	case yaml.ScalarNode:
		if err := node.Decode(&letters); err != nil {
			return err
		}

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		letters = strings.Join(arr, "")

	default:
		return fmt.Errorf("line %d: expected axis letters or a list of axes", node.Line)
	}

	axis, err := scene.ParseAxis(letters)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*a = AxisMask(axis)

	return nil
}

// MarshalYAML writes the letter form.
func (a AxisMask) MarshalYAML() (any, error) {
	return scene.Axis(a).String(), nil
}
