package codec

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// YAML encodes documents with gopkg.in/yaml.v3. Selected by building
// with the confy_yaml tag, or by injecting it explicitly.
type YAML struct{}

// Marshal implements [Codec].
func (YAML) Marshal(v any) (data []byte, err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return error.
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err = yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return data, nil
}

// Unmarshal implements [Codec].
func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "unmarshaling YAML")
	}
	return nil
}

// Extension implements [Codec].
func (YAML) Extension() string { return "yml" }
