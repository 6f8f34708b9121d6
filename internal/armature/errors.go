package armature

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRoot        = errors.New("both armature roots are required")
	ErrNoMeshes           = errors.New("at least one mesh is required")
	ErrNilMesh            = errors.New("mesh entries cannot be empty")
	ErrInvalidDisposition = errors.New("invalid extra bones action")
)

// ConfigError reports a merge that was refused before anything was touched.
type ConfigError struct {
	// Reason is one of the Err* sentinels above.
	Reason error
	// Detail names the offending input, if any.
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "merge configuration: " + e.Reason.Error()
	}

	return fmt.Sprintf("merge configuration: %s: %s", e.Reason, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}

func configError(reason error, format string, args ...any) *ConfigError {
	return &ConfigError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
