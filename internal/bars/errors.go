package bars

import (
	"errors"
	"fmt"
)

// Domain errors for visualizer setup.
var (
	// ErrConfiguration indicates a Config that violates its invariants.
	ErrConfiguration = errors.New("bars: invalid configuration")

	// ErrSurfaceUnavailable indicates the host could not provide a drawable surface.
	ErrSurfaceUnavailable = errors.New("bars: surface unavailable")
)

// ConfigError wraps ErrConfiguration with the offending field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
