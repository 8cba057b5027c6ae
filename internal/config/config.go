package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/keshet-app/keshet/internal/secrets"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// ServerConfig holds backend API settings.
type ServerConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	TokenEnv string `mapstructure:"token_env"`
	Token    string
}

// DatabaseConfig holds local cache sqlite settings.
type DatabaseConfig struct {
	Path           string
	MigrationsPath string `mapstructure:"migrations_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language       string
	ConsentGating  bool `mapstructure:"consent_gating"`
	SidebarWidth   int  `mapstructure:"sidebar_width"`
	OverlayPadding int  `mapstructure:"overlay_padding"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Debug bool
}

// Load reads configuration from file and env. Env var overrides use prefix KESHET_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.base_url", "https://api.keshet.app")
	v.SetDefault("server.token_env", "KESHET_TOKEN")
	v.SetDefault("server.token", "")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "keshet", "keshet.db"))
	v.SetDefault("database.migrations_path", "internal/database/migrations")
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.consent_gating", true)
	v.SetDefault("ui.sidebar_width", 22)
	v.SetDefault("ui.overlay_padding", 2)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "keshet", "keshet.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KESHET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "keshet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KESHET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ResolveToken returns the API token. Resolution order: the configured env
// var, then the local secret store, then the config file value.
func (c Config) ResolveToken() string {
	env := strings.TrimSpace(c.Server.TokenEnv)
	if env != "" {
		if tok := os.Getenv(env); tok != "" {
			return tok
		}
	}
	if tok, err := secrets.Fetch(secrets.TokenName); err == nil && tok != "" {
		return tok
	}
	return strings.TrimSpace(c.Server.Token)
}

// Save writes the provided config to disk, creating the config directory if
// needed. This is used by the TUI for non-sensitive preferences such as the
// active language; the token stays in its env var.
func Save(cfg Config) error {
	path := os.Getenv("KESHET_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "keshet", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("server.base_url", cfg.Server.BaseURL)
	v.Set("server.token_env", cfg.Server.TokenEnv)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations_path", cfg.Database.MigrationsPath)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("ui.consent_gating", cfg.UI.ConsentGating)
	v.Set("ui.sidebar_width", cfg.UI.SidebarWidth)
	v.Set("ui.overlay_padding", cfg.UI.OverlayPadding)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.debug", cfg.Log.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
