package contacts

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid indicates the grid has no rows.
var ErrEmptyGrid = errors.New("empty sheet")

// ErrNoRecords indicates the whole grid was processed but no vCard was produced.
var ErrNoRecords = errors.New("no contacts generated")

// ConfigError reports a missing or unusable configuration value.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, reason string, err error) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}
