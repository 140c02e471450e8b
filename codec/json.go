package codec

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// JSON encodes documents as 2-space indented JSON with a trailing
// newline, so files stay friendly to editors and diffs. Selected by
// building with the confy_json tag, or by injecting it explicitly.
type JSON struct{}

// Marshal implements [Codec].
func (JSON) Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON")
	}
	return append(data, '\n'), nil
}

// Unmarshal implements [Codec].
func (JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "unmarshaling JSON")
	}
	return nil
}

// Extension implements [Codec].
func (JSON) Extension() string { return "json" }
