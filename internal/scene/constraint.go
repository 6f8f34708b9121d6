package scene

import (
	"fmt"
	"strings"
)

// Axis is a bitmask of the axes a constraint drives.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ

	AxisNone Axis = 0
	AxisAll       = AxisX | AxisY | AxisZ
)

// String returns the axes as lowercase letters ("xyz", "xz", ...), or "none".
func (a Axis) String() string {
	if a&AxisAll == AxisNone {
		return "none"
	}

	var sb strings.Builder
	if a&AxisX != 0 {
		sb.WriteByte('x')
	}

	if a&AxisY != 0 {
		sb.WriteByte('y')
	}

	if a&AxisZ != 0 {
		sb.WriteByte('z')
	}

	return sb.String()
}

// ParseAxis parses the String form. Letters may come in any order and case.
func ParseAxis(s string) (Axis, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return AxisNone, nil
	}

	var a Axis

	for _, r := range s {
		switch r {
		case 'x':
			a |= AxisX
		case 'y':
			a |= AxisY
		case 'z':
			a |= AxisZ
		default:
			return AxisNone, fmt.Errorf("invalid axis %q in %q", r, s)
		}
	}

	return a, nil
}

// FollowConstraint makes its owner track the Source node's position and
// orientation without a parenting relationship.
type FollowConstraint struct {
	Source       *Node
	SourceWeight float32

	Active          bool
	Weight          float32
	Locked          bool
	TranslationAxes Axis
	RotationAxes    Axis
}

// NewFullFollow returns an active, locked constraint driving every
// translation and rotation axis from source at full weight.
func NewFullFollow(source *Node) *FollowConstraint {
	return &FollowConstraint{
		Source:          source,
		SourceWeight:    1,
		Active:          true,
		Weight:          1,
		Locked:          true,
		TranslationAxes: AxisAll,
		RotationAxes:    AxisAll,
	}
}

// AttachFollow sets c on n unless n already carries a follow binding.
// It reports whether c was attached.
func (n *Node) AttachFollow(c *FollowConstraint) bool {
	if n.Follow != nil {
		return false
	}

	n.Follow = c

	return true
}
