//go:build confy_json && !confy_yaml

package confy

import "github.com/rust-cli/confy/codec"

var defaultCodec codec.Codec = codec.JSON{}
