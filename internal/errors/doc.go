// Package errors provides error handling conventions for the confy CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific conditions using
// [errors.Is]:
//
//	if errors.Is(err, confyerrors.ErrUnknownKey) {
//	    // handle missing key
//	}
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. The main package extracts it with [errors.As] to choose
// the process exit code:
//
//	var exitErr *confyerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
