package confy

import "github.com/cockroachdb/errors"

// Sentinel errors classifying every failure the store engine can
// surface. Check them with errors.Is; the underlying cause (OS error,
// codec error) stays attached to the chain via errors.Unwrap.
var (
	// ErrBadConfigDirectory indicates the base configuration directory
	// could not be resolved for this environment, or a store target has
	// no parent directory (e.g. a filesystem root).
	ErrBadConfigDirectory = errors.New("bad configuration directory")

	// ErrDirectoryCreationFailed indicates recursive creation of the
	// config file's parent directories failed.
	ErrDirectoryCreationFailed = errors.New("creating configuration directory failed")

	// ErrOpenConfigurationFile indicates the target file could not be
	// opened for writing.
	ErrOpenConfigurationFile = errors.New("opening configuration file failed")

	// ErrReadConfigurationFile indicates an existing file opened but
	// could not be read in full.
	ErrReadConfigurationFile = errors.New("reading configuration file failed")

	// ErrWriteConfigurationFile indicates the encoded document could
	// not be written out in full.
	ErrWriteConfigurationFile = errors.New("writing configuration file failed")

	// ErrSetPermissionsFile indicates the requested permission bits
	// could not be applied to the target file.
	ErrSetPermissionsFile = errors.New("setting configuration file permissions failed")

	// ErrSerialization indicates the codec failed to encode a value.
	// The document on disk, if any, is untouched when this is returned.
	ErrSerialization = errors.New("serializing configuration failed")

	// ErrDeserialization indicates an existing document could not be
	// decoded by the active codec. Corruption is reported, not hidden;
	// use LoadPathOrElse for repair-by-overwrite instead.
	ErrDeserialization = errors.New("deserializing configuration failed")

	// ErrGeneralLoad indicates a load-time open failure that is not
	// "file missing" (permissions, I/O fault). Absence is not an error:
	// it triggers auto-provisioning instead.
	ErrGeneralLoad = errors.New("loading configuration failed")
)

// classify attaches a phase sentinel to err so callers can match it
// with errors.Is while the original cause stays on the chain.
func classify(err error, sentinel error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), sentinel)
}
