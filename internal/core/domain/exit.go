package domain

import (
	"errors"
	"fmt"
)

// UnknownCommandExit is the process exit status for an unregistered command name.
const UnknownCommandExit = 127

// ExitError carries the verbatim exit status of an external tool.
// Tool failures are never reinterpreted; the code travels up through the
// error chain and becomes the process's own exit status.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError for the given status code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error chain to a process exit status.
// nil maps to 0, ErrUnknownCommand to UnknownCommandExit, an embedded
// ExitError to its tool status, and anything else to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUnknownCommand) {
		return UnknownCommandExit
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}

	return 1
}
