// Package logging provides structured logging for the confy CLI using
// slog.
//
// The package supports text and JSON output, verbosity-derived levels,
// and helpers for testing. The text handler colorizes output when the
// destination is a terminal that wants color, and redacts attribute
// values whose keys look like credentials, since config documents are
// exactly where tokens tend to live.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("loaded", "path", path)
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework so it
// only surfaces on failure or with -v:
//
//	logger := logging.ForTest(t)
package logging
