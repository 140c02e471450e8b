package confy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/rust-cli/confy/codec"
)

// setConfigHome points XDG_CONFIG_HOME at a temp dir and reloads the
// xdg package state, so named operations stay out of the real home.
func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestConfigurationFilePath(t *testing.T) {
	home := setConfigHome(t)

	tests := []struct {
		name       string
		appName    string
		configName string
		want       string
	}{
		{
			name:       "default config name",
			appName:    "my-app",
			configName: "",
			want:       filepath.Join(home, "my-app", "default-config.toml"),
		},
		{
			name:       "named config",
			appName:    "my-app",
			configName: "servers",
			want:       filepath.Join(home, "my-app", "servers.toml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfigurationFilePath(tt.appName, tt.configName)
			if err != nil {
				t.Fatalf("ConfigurationFilePath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConfigurationFilePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigurationFilePath_EmptyAppName(t *testing.T) {
	setConfigHome(t)

	_, err := ConfigurationFilePath("", "")
	if !errors.Is(err, ErrBadConfigDirectory) {
		t.Errorf("ConfigurationFilePath(\"\") error = %v, want ErrBadConfigDirectory", err)
	}
}

func TestLoadSave_Named(t *testing.T) {
	home := setConfigHome(t)

	// First load provisions the default document.
	got, err := Load[testConfig]("my-app", "")
	require.NoError(t, err)
	require.Equal(t, testConfig{}, got)

	path := filepath.Join(home, "my-app", "default-config.toml")
	_, err = os.Stat(path)
	require.NoError(t, err, "expected provisioned file at %s", path)

	// Save a value and read it back through the named API.
	want := testConfig{Name: "Unknown", Comfy: true, Foo: 42}
	require.NoError(t, Save("my-app", "", want))

	got, err = Load[testConfig]("my-app", "")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadSave_SeparateConfigNames(t *testing.T) {
	setConfigHome(t)

	require.NoError(t, Save("my-app", "alpha", testConfig{Name: "a"}))
	require.NoError(t, Save("my-app", "beta", testConfig{Name: "b"}))

	alpha, err := Load[testConfig]("my-app", "alpha")
	require.NoError(t, err)
	beta, err := Load[testConfig]("my-app", "beta")
	require.NoError(t, err)

	require.Equal(t, "a", alpha.Name)
	require.Equal(t, "b", beta.Name)
}

func TestStore_NamedPathUsesCodecExtension(t *testing.T) {
	home := setConfigHome(t)

	s := NewStore[testConfig](codec.JSON{})
	path, err := s.ConfigurationFilePath("my-app", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "my-app", "default-config.json"), path)

	require.NoError(t, s.Save("my-app", "", testConfig{Name: "json"}))
	got, err := s.Load("my-app", "")
	require.NoError(t, err)
	require.Equal(t, "json", got.Name)
}

func TestDefault(t *testing.T) {
	// Without format tags the build-selected codec is TOML.
	if ext := Default().Extension(); ext != "toml" {
		t.Errorf("Default().Extension() = %q, want %q", ext, "toml")
	}
}
