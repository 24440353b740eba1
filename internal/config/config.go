package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Remote   RemoteConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// RemoteConfig holds the currency API settings.
type RemoteConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Source       string        `mapstructure:"source"`
	AccessKeyEnv string        `mapstructure:"access_key_env"`
	AccessKey    string        `mapstructure:"access_key"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultSort    string `mapstructure:"default_sort"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level       string
	Development bool
	Path        string
}

// Load reads configuration from file and env. Env var overrides use prefix JASKFX_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "jaskfx", "jaskfx.db"))
	v.SetDefault("remote.base_url", "https://api.currencylayer.com")
	v.SetDefault("remote.source", "USD")
	v.SetDefault("remote.access_key_env", "JASKFX_ACCESS_KEY")
	v.SetDefault("remote.access_key", "")
	v.SetDefault("remote.timeout", "8s")
	v.SetDefault("ui.default_sort", "asc")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jaskfx", "jaskfx.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKFX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "jaskfx"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKFX")
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

// Path is where Save writes.
func Path() string {
	if p := os.Getenv("JASKFX_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskfx", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
// The access key is stored in plain text; prefer the env var or `jaskfx key set`.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("remote.base_url", cfg.Remote.BaseURL)
	v.Set("remote.source", cfg.Remote.Source)
	v.Set("remote.access_key_env", cfg.Remote.AccessKeyEnv)
	v.Set("remote.access_key", cfg.Remote.AccessKey)
	v.Set("remote.timeout", cfg.Remote.Timeout.String())
	v.Set("ui.default_sort", cfg.UI.DefaultSort)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.development", cfg.Log.Development)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
