// Package confy persists typed application configuration with zero
// boilerplate.
//
// Given an application name and a logical config name, confy resolves
// a platform-appropriate file path (XDG conventions on Linux and
// macOS, %LOCALAPPDATA% on Windows), loads a structured value from it,
// and provisions the file with a default value when it does not exist
// yet. Values are plain Go structs; the on-disk format is a single
// human-editable text document per config.
//
// # Loading and saving
//
//	type AppConfig struct {
//	    Name  string `toml:"name"`
//	    Comfy bool   `toml:"comfy"`
//	    Foo   int64  `toml:"foo"`
//	}
//
//	cfg, err := confy.Load[AppConfig]("my-app", "")
//	if err != nil {
//	    return err
//	}
//	cfg.Comfy = true
//	if err := confy.Save("my-app", "", cfg); err != nil {
//	    return err
//	}
//
// The first Load creates ~/.config/my-app/default-config.toml holding
// AppConfig's zero value, so callers never special-case first run.
// Pass a config name instead of "" to keep several documents per
// application.
//
// # Formats
//
// The serialization format is fixed at build time. TOML is the
// default; build with -tags confy_yaml or -tags confy_json to switch
// the whole program over. Selecting more than one format tag fails the
// build. Programs that need per-store formats inject a codec
// explicitly:
//
//	s := confy.NewStore[AppConfig](codec.YAML{})
//	cfg, err := s.Load("my-app", "")
//
// # Failure handling
//
// Every failure is returned as an error marked with one of the
// package's sentinel errors (see [ErrBadConfigDirectory] and friends)
// and is matchable with errors.Is; the underlying cause stays on the
// chain. Only "file missing" is handled locally, by provisioning a
// default. A document that exists but cannot be decoded is reported
// via [ErrDeserialization] — or repaired by overwrite when loaded
// through [LoadPathOrElse]:
//
//	cfg, err := confy.LoadPathOrElse(path, func() AppConfig {
//	    return AppConfig{Name: "fresh"}
//	})
//
// Writes encode the value fully before opening the target file, so a
// serialization fault leaves any existing document untouched.
package confy
