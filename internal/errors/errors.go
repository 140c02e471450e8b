package errors

import (
	"errors"
	"fmt"
)

// Exit codes for the confy CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (bad arguments, unknown
	// key, malformed value).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownKey indicates the requested key is not present in the
	// configuration document.
	ErrUnknownKey = errors.New("key not found")

	// ErrNotAMap indicates a dotted key path descends through a value
	// that is not a table/map.
	ErrNotAMap = errors.New("key path does not address a table")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with
// the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and
// errors.As to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
