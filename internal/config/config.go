package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// SettingsFile is where the configure command persists the selected
	// provider. Extension picks the codec (.json or .yaml).
	SettingsFile string `mapstructure:"settings_file"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	// HistoryPath enables the bbolt query journal when non-empty.
	HistoryPath       string        `mapstructure:"history_path"`
	HistoryTTLSeconds int64         `mapstructure:"history_ttl_seconds"`
	HistoryTTL        time.Duration `mapstructure:"-"`
	HistoryLimit      int           `mapstructure:"history_limit"`
}

// Load reads configuration from environment variables, after sourcing a
// local .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "wapp")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("settings_file", "config.json")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("history_path", "")
	v.SetDefault("history_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("history_limit", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.HistoryTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid history_ttl_seconds (must be positive seconds)")
	}
	cfg.HistoryTTL = time.Duration(cfg.HistoryTTLSeconds) * time.Second

	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("invalid history_limit (must be positive)")
	}

	return &cfg, nil
}
