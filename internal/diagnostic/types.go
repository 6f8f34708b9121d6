package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Diagnostic codes.
const (
	CodeScaleMismatch     = "scale_mismatch"
	CodeUnresolvedBone    = "unresolved_bone"
	CodeNilBoneSlot       = "nil_bone_slot"
	CodeNoMatchedAncestor = "no_matched_ancestor"
	CodeFollowExists      = "follow_exists"
	CodeReparentFailed    = "reparent_failed"
	CodeInvalidDocument   = "invalid_document"
	CodeDanglingReference = "dangling_reference"
	CodeInvalidJob        = "invalid_job"
)

// Diagnostics holds every finding from one load or merge.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Mesh names the skinned mesh this relates to (if any).
	Mesh string
	// Bone is the path or name of the bone this relates to (if any).
	Bone string
	// Suggestions are likely intended counterparts or fixes.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, mesh, bone string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Mesh:     mesh,
		Bone:     bone,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, mesh, bone string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Mesh:     mesh,
		Bone:     bone,
	})
}

// AddInfo adds an info diagnostic with optional suggestions.
func (d *Diagnostics) AddInfo(code, message, mesh, bone string, suggestions ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    SeverityInfo,
		Code:        code,
		Message:     message,
		Mesh:        mesh,
		Bone:        bone,
		Suggestions: suggestions,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ByCode returns every diagnostic with the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Mesh != "" {
		prefix = append(prefix, "["+d.Mesh+"]")
	}

	if d.Bone != "" {
		prefix = append(prefix, d.Bone)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
