//go:build confy_yaml && !confy_json

package confy

import "github.com/rust-cli/confy/codec"

var defaultCodec codec.Codec = codec.YAML{}
