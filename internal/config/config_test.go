package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JASKFX_CONFIG", filepath.Join(home, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "jaskfx", "jaskfx.db"), cfg.Database.Path)
	require.Equal(t, "USD", cfg.Remote.Source)
	require.Equal(t, "JASKFX_ACCESS_KEY", cfg.Remote.AccessKeyEnv)
	require.Equal(t, 8*time.Second, cfg.Remote.Timeout)
	require.Equal(t, "asc", cfg.UI.DefaultSort)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[remote]
base_url = "http://localhost:9999"
timeout = "2s"

[ui]
default_sort = "desc"
`), 0o600))
	t.Setenv("JASKFX_CONFIG", path)
	t.Setenv("JASKFX_REMOTE_SOURCE", "EUR")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999", cfg.Remote.BaseURL)
	require.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	require.Equal(t, "desc", cfg.UI.DefaultSort)
	require.Equal(t, "EUR", cfg.Remote.Source)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "nested", "config.toml")
	t.Setenv("JASKFX_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.DefaultSort = "desc"
	cfg.Remote.Timeout = 3 * time.Second
	require.NoError(t, Save(cfg))
	require.FileExists(t, path)

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, "desc", again.UI.DefaultSort)
	require.Equal(t, 3*time.Second, again.Remote.Timeout)
	require.Equal(t, cfg.Database.Path, again.Database.Path)
}
