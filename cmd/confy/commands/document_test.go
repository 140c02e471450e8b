package commands

import (
	"testing"

	"github.com/cockroachdb/errors"

	confyerrors "github.com/rust-cli/confy/internal/errors"
)

func TestLookupKey(t *testing.T) {
	doc := map[string]any{
		"comfy": true,
		"server": map[string]any{
			"port": int64(8080),
			"tls": map[string]any{
				"enabled": false,
			},
		},
	}

	tests := []struct {
		name    string
		key     string
		want    any
		wantErr error
	}{
		{name: "top-level", key: "comfy", want: true},
		{name: "nested", key: "server.port", want: int64(8080)},
		{name: "deeply nested", key: "server.tls.enabled", want: false},
		{name: "missing top-level", key: "nope", wantErr: confyerrors.ErrUnknownKey},
		{name: "missing nested", key: "server.nope", wantErr: confyerrors.ErrUnknownKey},
		{name: "descend through scalar", key: "comfy.nope", wantErr: confyerrors.ErrNotAMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lookupKey(doc, tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("lookupKey(%q) error = %v, want %v", tt.key, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookupKey(%q) error = %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("lookupKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSetKey(t *testing.T) {
	t.Run("creates intermediate tables", func(t *testing.T) {
		doc := map[string]any{}
		if err := setKey(doc, "server.tls.enabled", true); err != nil {
			t.Fatalf("setKey() error = %v", err)
		}

		got, err := lookupKey(doc, "server.tls.enabled")
		if err != nil {
			t.Fatalf("lookupKey() error = %v", err)
		}
		if got != true {
			t.Errorf("value = %v, want true", got)
		}
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		doc := map[string]any{"port": int64(80)}
		if err := setKey(doc, "port", int64(8080)); err != nil {
			t.Fatalf("setKey() error = %v", err)
		}
		if doc["port"] != int64(8080) {
			t.Errorf("port = %v, want 8080", doc["port"])
		}
	})

	t.Run("refuses to descend through scalar", func(t *testing.T) {
		doc := map[string]any{"comfy": true}
		if err := setKey(doc, "comfy.nested", 1); !errors.Is(err, confyerrors.ErrNotAMap) {
			t.Errorf("setKey() error = %v, want ErrNotAMap", err)
		}
	})
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{in: "true", want: true},
		{in: "false", want: false},
		{in: "8080", want: int64(8080)},
		{in: "-3", want: int64(-3)},
		{in: "2.5", want: 2.5},
		{in: "hello", want: "hello"},
		{in: "8080h", want: "8080h"},
	}

	for _, tt := range tests {
		if got := parseScalar(tt.in); got != tt.want {
			t.Errorf("parseScalar(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
