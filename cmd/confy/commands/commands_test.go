package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

// setConfigHome points XDG_CONFIG_HOME at a temp dir so commands stay
// out of the real home directory.
func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

// runCapture invokes a command's RunE with a buffer for stdout.
func runCapture(t *testing.T, run func(*cobra.Command, []string) error, args []string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	err := run(cmd, args)
	return buf.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		use  string
		args int
	}{
		{cmd: pathCmd, use: "path <app> [name]"},
		{cmd: showCmd, use: "show <app> [name]"},
		{cmd: getCmd, use: "get <app> <key>"},
		{cmd: setCmd, use: "set <app> <key> <value>"},
		{cmd: browseCmd, use: "browse <app>"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			if tt.cmd.Use != tt.use {
				t.Errorf("Use = %q, want %q", tt.cmd.Use, tt.use)
			}
			if tt.cmd.Short == "" {
				t.Error("Short description should not be empty")
			}
			if tt.cmd.RunE == nil {
				t.Error("RunE should be set")
			}
		})
	}
}

func TestRunPath(t *testing.T) {
	home := setConfigHome(t)

	out, err := runCapture(t, runPath, []string{"my-app"})
	if err != nil {
		t.Fatalf("runPath() error = %v", err)
	}

	want := filepath.Join(home, "my-app", "default-config.toml")
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestRunPath_NamedConfig(t *testing.T) {
	home := setConfigHome(t)

	out, err := runCapture(t, runPath, []string{"my-app", "servers"})
	if err != nil {
		t.Fatalf("runPath() error = %v", err)
	}

	want := filepath.Join(home, "my-app", "servers.toml")
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestRunSetThenGet(t *testing.T) {
	setConfigHome(t)

	out, err := runCapture(t, runSet, []string{"my-app", "server.port", "8080"})
	if err != nil {
		t.Fatalf("runSet() error = %v", err)
	}
	if !strings.Contains(out, "Set server.port = 8080") {
		t.Errorf("set output = %q", out)
	}

	out, err = runCapture(t, runGet, []string{"my-app", "server.port"})
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}
	if strings.TrimSpace(out) != "8080" {
		t.Errorf("get output = %q, want 8080", strings.TrimSpace(out))
	}
}

func TestRunGet_UnknownKey(t *testing.T) {
	setConfigHome(t)

	_, err := runCapture(t, runGet, []string{"my-app", "nope"})
	if err == nil {
		t.Fatal("runGet() expected error for unknown key")
	}
}

func TestRunShow(t *testing.T) {
	setConfigHome(t)

	if _, err := runCapture(t, runSet, []string{"my-app", "comfy", "true"}); err != nil {
		t.Fatal(err)
	}

	out, err := runCapture(t, runShow, []string{"my-app"})
	if err != nil {
		t.Fatalf("runShow() error = %v", err)
	}
	if !strings.Contains(out, "comfy: true") {
		t.Errorf("show output = %q, want YAML with comfy: true", out)
	}
}

func TestRunShow_JSON(t *testing.T) {
	setConfigHome(t)

	if _, err := runCapture(t, runSet, []string{"my-app", "comfy", "true"}); err != nil {
		t.Fatal(err)
	}

	showJSON = true
	t.Cleanup(func() { showJSON = false })

	out, err := runCapture(t, runShow, []string{"my-app"})
	if err != nil {
		t.Fatalf("runShow() error = %v", err)
	}
	if !strings.Contains(out, `"comfy": true`) {
		t.Errorf("show output = %q, want JSON with comfy", out)
	}
}

func TestRunShow_ProvisionsMissingDocument(t *testing.T) {
	home := setConfigHome(t)

	if _, err := runCapture(t, runShow, []string{"fresh-app"}); err != nil {
		t.Fatalf("runShow() error = %v", err)
	}

	// The library's auto-provision behavior applies to the CLI too.
	path := filepath.Join(home, "fresh-app", "default-config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected provisioned file at %s: %v", path, err)
	}
}
