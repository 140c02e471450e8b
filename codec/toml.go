package codec

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// TOML is the default codec. Documents are rendered with go-toml's
// standard table layout, which keeps hand-edited files stable across
// round-trips.
type TOML struct{}

// Marshal implements [Codec].
func (TOML) Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling TOML")
	}
	return data, nil
}

// Unmarshal implements [Codec]. Unknown keys in the document are
// ignored; type mismatches and syntax errors are reported.
func (TOML) Unmarshal(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "unmarshaling TOML")
	}
	return nil
}

// Extension implements [Codec].
func (TOML) Extension() string { return "toml" }
