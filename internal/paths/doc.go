// Package paths resolves configuration file locations for confy.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory Specification compliance. On Linux and macOS, paths follow
// XDG conventions (~/.config); on Windows, %LOCALAPPDATA%.
//
// A named configuration resolves to:
//
//	<ConfigHome>/<appName>/<configName>.<ext>
//
// where ext is fixed by the active codec. When no config name is given,
// [DefaultConfigName] is used:
//
//	paths.ConfigFile("my-app", "", "toml")
//	// ~/.config/my-app/default-config.toml
//
// Resolution is pure string construction. Nothing here touches the
// filesystem; directory creation happens in the store engine when a
// document is first written.
package paths
