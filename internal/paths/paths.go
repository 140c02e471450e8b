package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// DefaultConfigName is the logical config name used when the caller
// does not supply one. The file on disk becomes
// "default-config.<ext>" inside the application's config directory.
const DefaultConfigName = "default-config"

// Sentinel errors for path resolution.
var (
	// ErrNoConfigDirectory indicates no base configuration directory
	// could be determined for the current environment.
	ErrNoConfigDirectory = errors.New("config directory not found")

	// ErrEmptyAppName indicates the application name was empty.
	ErrEmptyAppName = errors.New("application name is required")
)

// ConfigHome returns the base configuration directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the configuration directory for an application:
// <ConfigHome>/<appName>. It performs no filesystem access; the
// directory may not exist yet.
func AppConfigDir(appName string) (string, error) {
	if appName == "" {
		return "", ErrEmptyAppName
	}
	base := ConfigHome()
	if base == "" {
		return "", ErrNoConfigDirectory
	}
	if !filepath.IsAbs(base) {
		return "", errors.Wrapf(ErrNoConfigDirectory, "base directory %q is not absolute", base)
	}
	return filepath.Join(base, appName), nil
}

// ConfigFile resolves the path of a named config file:
// <ConfigHome>/<appName>/<configName>.<ext>. An empty configName
// selects DefaultConfigName. ext is given without the leading dot.
//
// Resolution is pure: the same inputs always yield the same path and
// nothing is created on disk.
func ConfigFile(appName, configName, ext string) (string, error) {
	dir, err := AppConfigDir(appName)
	if err != nil {
		return "", err
	}
	if configName == "" {
		configName = DefaultConfigName
	}
	return filepath.Join(dir, configName+"."+ext), nil
}
