package confy

import (
	"os"

	"github.com/rust-cli/confy/codec"
)

// Default returns the codec selected at build time: TOML unless the
// module was built with the confy_yaml or confy_json tag. All
// package-level functions use it; construct a [Store] with [NewStore]
// to use a different codec.
func Default() codec.Codec {
	return defaultCodec
}

// Load reads the named configuration for an application using the
// default codec, provisioning it with T's zero value on first use.
// An empty configName selects "default-config".
func Load[T any](appName, configName string) (T, error) {
	var s Store[T]
	return s.Load(appName, configName)
}

// LoadPath reads the configuration document at path using the default
// codec. See [Store.LoadPath].
func LoadPath[T any](path string) (T, error) {
	var s Store[T]
	return s.LoadPath(path)
}

// LoadPathOrElse reads the configuration document at path, persisting
// and returning fallback() when the file is missing or undecodable.
// See [Store.LoadPathOrElse].
func LoadPathOrElse[T any](path string, fallback func() T) (T, error) {
	var s Store[T]
	return s.LoadPathOrElse(path, fallback)
}

// Save persists value as the named configuration for an application
// using the default codec. An empty configName selects
// "default-config".
func Save[T any](appName, configName string, value T) error {
	var s Store[T]
	return s.Save(appName, configName, value)
}

// SavePath persists value as the document at path using the default
// codec. See [Store.SavePath].
func SavePath[T any](path string, value T) error {
	var s Store[T]
	return s.SavePath(path, value)
}

// SavePathPerms is SavePath with explicit permission bits applied to
// the file before its content is written.
func SavePathPerms[T any](path string, value T, perm os.FileMode) error {
	var s Store[T]
	return s.SavePathPerms(path, value, perm)
}

// ConfigurationFilePath resolves the file the package-level functions
// read and write for the given application and logical config name.
func ConfigurationFilePath(appName, configName string) (string, error) {
	var s Store[struct{}]
	return s.ConfigurationFilePath(appName, configName)
}
