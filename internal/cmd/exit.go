// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	zerrors "github.com/zmodtool/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates module metadata validation failed.
	ExitValidationError = 2

	// ExitUnresolved indicates unmet or cyclic module dependencies.
	ExitUnresolved = 3

	// ExitNotFound indicates an explicitly listed module was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitUnresolved:
		return "Unresolved Dependencies"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *zerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, zerrors.ErrSchema),
		errors.Is(err, zerrors.ErrInvalidSetting):
		return ExitValidationError
	case errors.Is(err, zerrors.ErrUnresolved):
		return ExitUnresolved
	case errors.Is(err, zerrors.ErrExplicitModule):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
