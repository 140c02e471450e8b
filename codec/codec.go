package codec

// Codec encodes and decodes typed values to and from a single
// structured-text format.
type Codec interface {
	// Marshal renders v as a complete, human-editable text document.
	// It returns either the full document or an error; it never
	// produces partial output and never touches external state.
	Marshal(v any) ([]byte, error)

	// Unmarshal parses a document produced by Marshal (or edited by a
	// human) into v, which must be a non-nil pointer. Unknown fields
	// in the document are ignored; malformed input is an error.
	Unmarshal(data []byte, v any) error

	// Extension returns the file extension for this format, without
	// the leading dot (e.g. "toml").
	Extension() string
}
