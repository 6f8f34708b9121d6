package armature

import (
	"fmt"
	"log/slog"
	"strings"

	"armature-merge/internal/scene"
)

//go:generate go tool stringer -type=Disposition -linecomment -output=disposition_string.go

// Disposition is what happens to bones that have no counterpart in the
// main armature. It applies to the whole merge.
type Disposition int

const (
	// DispositionNone leaves unmatched bones where they are.
	DispositionNone Disposition = iota // none
	// DispositionReparent moves an unmatched bone under the counterpart of
	// its nearest matched ancestor.
	DispositionReparent // reparent
	// DispositionFollow keeps the hierarchy and makes the nearest matched
	// ancestor follow its counterpart.
	DispositionFollow // follow
)

// IsValid returns true if d is a known disposition.
func (d Disposition) IsValid() bool {
	return d >= DispositionNone && d <= DispositionFollow
}

// ParseDisposition accepts the String form plus "move" and "constrain".
func ParseDisposition(s string) (Disposition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DispositionNone, nil
	case "reparent", "move":
		return DispositionReparent, nil
	case "follow", "constrain":
		return DispositionFollow, nil
	default:
		return DispositionNone, fmt.Errorf("%w: %q (want none, reparent or follow)", ErrInvalidDisposition, s)
	}
}

// Options configures a merge.
type Options struct {
	// Disposition applies to every unmatched bone.
	Disposition Disposition
	// RemoveUnused destroys merge bones superseded by a counterpart once
	// nothing below them is still needed.
	RemoveUnused bool
	// IgnorePath matches bones by name anywhere under the main root.
	IgnorePath bool
	// Keep lists nodes pruning must not destroy, such as the sources of
	// follow constraints elsewhere in the scene.
	Keep []*scene.Node
	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
