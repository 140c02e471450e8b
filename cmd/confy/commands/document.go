package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	confyerrors "github.com/rust-cli/confy/internal/errors"
)

// The CLI works on untyped documents: every confy-managed file decodes
// into a map[string]any regardless of the Go type the owning
// application uses, because codecs decode by field name.

// lookupKey resolves a dotted key ("server.port") inside a document.
func lookupKey(doc map[string]any, key string) (any, error) {
	parts := strings.Split(key, ".")
	var cur any = doc
	for i, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(confyerrors.ErrNotAMap,
				"%q", strings.Join(parts[:i], "."))
		}
		cur, ok = m[part]
		if !ok {
			return nil, errors.Wrapf(confyerrors.ErrUnknownKey,
				"%q", strings.Join(parts[:i+1], "."))
		}
	}
	return cur, nil
}

// setKey assigns a dotted key inside a document, creating intermediate
// tables as needed.
func setKey(doc map[string]any, key string, value any) error {
	parts := strings.Split(key, ".")
	cur := doc
	for i, part := range parts[:len(parts)-1] {
		next, ok := cur[part]
		if !ok {
			child := map[string]any{}
			cur[part] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return errors.Wrapf(confyerrors.ErrNotAMap,
				"%q", strings.Join(parts[:i+1], "."))
		}
		cur = child
	}
	cur[parts[len(parts)-1]] = value
	return nil
}

// parseScalar interprets a command-line value as a bool, integer, or
// float before falling back to a plain string, so "true" and "8080"
// land in the document as their natural types.
func parseScalar(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
