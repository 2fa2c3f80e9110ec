// Package errors provides sentinel errors for the zmod CLI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrSchema indicates a module metadata file failed schema validation.
	ErrSchema = errors.New("schema violation")

	// ErrInvalidSetting indicates a declared build setting does not resolve
	// to an existing required file.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnresolved indicates unmet or cyclic dependencies between modules.
	ErrUnresolved = errors.New("unmet or cyclic dependencies")

	// ErrExplicitModule indicates an explicitly listed module is not a
	// valid module.
	ErrExplicitModule = errors.New("not a valid module")

	// ErrNotModule indicates a directory does not qualify as a module.
	// This is a soft condition during auto-discovery, not a failure.
	ErrNotModule = errors.New("not a module")
)

// ExitError wraps an error with an exit code for the command layer.
type ExitError struct {
	Err  error
	Code int

	// Printed indicates the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Wrapf wraps an error with a sentinel error type and a formatted message.
func Wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
