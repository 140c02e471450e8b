//go:build !confy_yaml && !confy_json

package confy

import "github.com/rust-cli/confy/codec"

// defaultCodec is fixed at build time. Exactly one format file
// compiles per build; selecting more than one format tag leaves
// defaultCodec undefined and the build fails.
var defaultCodec codec.Codec = codec.TOML{}
