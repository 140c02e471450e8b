package confy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/rust-cli/confy/codec"
	"github.com/rust-cli/confy/internal/paths"
)

// Default permissions for provisioned files and directories.
const (
	DefaultFilePerm = os.FileMode(0o644)
	DefaultDirPerm  = os.FileMode(0o755)
)

// Store is the load/store engine for one configuration value type.
// It orchestrates path resolution, the codec, and filesystem I/O.
//
// The zero value uses the build-selected codec (see [Default]); inject
// a different one with [NewStore]. A Store holds no state between
// calls: every operation is a fresh path-to-value round-trip, and the
// engine never retains a reference to a value after a call returns.
//
// Operations are synchronous and block on filesystem I/O for their
// full duration. The engine assumes a single writer at a time per
// path; concurrent writers race at the OS level and must be
// serialized by the caller.
type Store[T any] struct {
	codec codec.Codec
}

// NewStore creates a Store using the given codec. A nil codec selects
// the build-time default.
func NewStore[T any](c codec.Codec) *Store[T] {
	return &Store[T]{codec: c}
}

func (s *Store[T]) activeCodec() codec.Codec {
	if s.codec == nil {
		return defaultCodec
	}
	return s.codec
}

// ConfigurationFilePath resolves the file this store reads and writes
// for the given application and logical config name. An empty
// configName selects "default-config". No filesystem access happens;
// the file and its directories may not exist yet.
func (s *Store[T]) ConfigurationFilePath(appName, configName string) (string, error) {
	path, err := paths.ConfigFile(appName, configName, s.activeCodec().Extension())
	if err != nil {
		return "", classify(err, ErrBadConfigDirectory, "resolving configuration path")
	}
	return path, nil
}

// Load reads the named configuration for an application, provisioning
// it with T's zero value on first use. See [Store.LoadPath].
func (s *Store[T]) Load(appName, configName string) (T, error) {
	path, err := s.ConfigurationFilePath(appName, configName)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.LoadPath(path)
}

// LoadPath reads the configuration document at path.
//
// If the file exists it is decoded with the active codec; a document
// that cannot be decoded surfaces ErrDeserialization rather than being
// silently replaced. If the file does not exist, missing parent
// directories are created, T's zero value is persisted there, and that
// value is returned: callers never special-case first run. Any other
// open failure surfaces ErrGeneralLoad.
func (s *Store[T]) LoadPath(path string) (T, error) {
	var value T

	f, outcome, err := openForRead(path)
	switch outcome {
	case openedFile:
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return value, classify(err, ErrReadConfigurationFile, "reading "+path)
		}
		if err := s.activeCodec().Unmarshal(data, &value); err != nil {
			return value, classify(err, ErrDeserialization, "decoding "+path)
		}
		return value, nil

	case missingFile:
		if err := s.SavePath(path, value); err != nil {
			return value, err
		}
		return value, nil

	default:
		return value, classify(err, ErrGeneralLoad, "opening "+path)
	}
}

// LoadPathOrElse reads the configuration document at path, computing a
// fallback value when no usable document exists.
//
// A missing file and an undecodable file are both handled the same
// way: fallback() is called, its result is persisted at path
// (overwriting a corrupt document), and that result is returned.
// Corrupt configuration is repaired, not fatal. Open failures that are
// not "file missing" still propagate, as do read faults.
func (s *Store[T]) LoadPathOrElse(path string, fallback func() T) (T, error) {
	var zero T

	f, outcome, err := openForRead(path)
	switch outcome {
	case openedFile:
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return zero, classify(err, ErrReadConfigurationFile, "reading "+path)
		}
		var value T
		if err := s.activeCodec().Unmarshal(data, &value); err == nil {
			return value, nil
		}
		// Repair by overwrite: the unreadable document is replaced
		// with the fallback, not preserved.
		value = fallback()
		if err := s.SavePath(path, value); err != nil {
			return zero, err
		}
		return value, nil

	case missingFile:
		value := fallback()
		if err := s.SavePath(path, value); err != nil {
			return zero, err
		}
		return value, nil

	default:
		return zero, classify(err, ErrGeneralLoad, "opening "+path)
	}
}

// Save persists value as the named configuration for an application.
// See [Store.SavePath].
func (s *Store[T]) Save(appName, configName string, value T) error {
	path, err := s.ConfigurationFilePath(appName, configName)
	if err != nil {
		return err
	}
	return s.SavePath(path, value)
}

// SavePath persists value as the document at path, creating missing
// parent directories. The file is created with 0644 permissions.
func (s *Store[T]) SavePath(path string, value T) error {
	return s.savePath(path, value, 0, false)
}

// SavePathPerms is SavePath with explicit permission bits applied to
// the file before its content is written.
func (s *Store[T]) SavePathPerms(path string, value T, perm os.FileMode) error {
	return s.savePath(path, value, perm, true)
}

func (s *Store[T]) savePath(path string, value T, perm os.FileMode, setPerm bool) error {
	path = filepath.Clean(path)
	parent := filepath.Dir(path)
	if parent == path {
		// Refuse filesystem roots before any mutation.
		return errors.Wrapf(ErrBadConfigDirectory, "%q has no parent directory", path)
	}

	if err := os.MkdirAll(parent, DefaultDirPerm); err != nil {
		return classify(err, ErrDirectoryCreationFailed, "creating "+parent)
	}

	// Encode before touching the target file: a codec fault must leave
	// any existing document byte-for-byte intact.
	data, err := s.activeCodec().Marshal(value)
	if err != nil {
		return classify(err, ErrSerialization, "encoding configuration")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return classify(err, ErrOpenConfigurationFile, "opening "+path)
	}

	if setPerm {
		if err := f.Chmod(perm); err != nil {
			f.Close()
			return classify(err, ErrSetPermissionsFile, "applying permissions to "+path)
		}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return classify(err, ErrWriteConfigurationFile, "writing "+path)
	}

	if err := f.Close(); err != nil {
		return classify(err, ErrWriteConfigurationFile, "closing "+path)
	}

	return nil
}

// openOutcome tags the result of opening a config file for reading, so
// the auto-provision path is an explicit branch rather than error
// inspection scattered through the callers.
type openOutcome int

const (
	openedFile openOutcome = iota
	missingFile
	faultedFile
)

func openForRead(path string) (*os.File, openOutcome, error) {
	f, err := os.Open(path)
	switch {
	case err == nil:
		return f, openedFile, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, missingFile, nil
	default:
		return nil, faultedFile, err
	}
}
