package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keshet-app/keshet/internal/secrets"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KESHET_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.keshet.app", cfg.Server.BaseURL)
	require.Equal(t, "KESHET_TOKEN", cfg.Server.TokenEnv)
	require.Equal(t, "en", cfg.UI.Language)
	require.True(t, cfg.UI.ConsentGating)
	require.Equal(t, 22, cfg.UI.SidebarWidth)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
base_url = "https://staging.keshet.app"

[ui]
language = "he"
consent_gating = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("KESHET_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://staging.keshet.app", cfg.Server.BaseURL)
	require.Equal(t, "he", cfg.UI.Language)
	require.False(t, cfg.UI.ConsentGating)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KESHET_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("KESHET_UI_LANGUAGE", "ar")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ar", cfg.UI.Language)
}

func TestResolveTokenPrefersEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KESHET_TOKEN", "env-token")
	cfg := Config{Server: ServerConfig{TokenEnv: "KESHET_TOKEN", Token: "file-token"}}
	require.Equal(t, "env-token", cfg.ResolveToken())

	t.Setenv("KESHET_TOKEN", "")
	require.Equal(t, "file-token", cfg.ResolveToken())
}

func TestResolveTokenFallsBackToSecretStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KESHET_TOKEN", "")
	require.NoError(t, secrets.Store(secrets.TokenName, "stored-token"))

	cfg := Config{Server: ServerConfig{TokenEnv: "KESHET_TOKEN", Token: "file-token"}}
	require.Equal(t, "stored-token", cfg.ResolveToken())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("KESHET_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Language = "he"
	require.NoError(t, Save(cfg))

	reread, err := Load()
	require.NoError(t, err)
	require.Equal(t, "he", reread.UI.Language)
}
