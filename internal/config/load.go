package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. BOOKSHELF_SERVER_PORT.
const EnvPrefix = "BOOKSHELF"

// defaults lists every known key. Viper only consults the environment for
// keys it already knows about when unmarshalling, so required keys without a
// sensible default are registered with a zero value.
var defaults = map[string]any{
	"server.port":                        8080,
	"server.log_level":                   "info",
	"server.services":                    ServicesAll,
	"server.shutdown_timeout_seconds":    10,
	"database.url":                       "",
	"database.max_open_conns":            10,
	"database.max_idle_conns":            5,
	"database.conn_max_lifetime_minutes": 5,
	"database.auto_migrate":              true,
	"auth.jwt_secret":                    "",
	"auth.token_lifetime_minutes":        20,
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Optional config.yaml in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and the cross-section requirement that
// the todo API has both a database and a signing secret.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Server.TodoEnabled() {
		if cfg.Database.URL == "" {
			return fmt.Errorf("config validation failed: database.url is required when the todo service is enabled")
		}
		if cfg.Auth.JWTSecret == "" {
			return fmt.Errorf("config validation failed: auth.jwt_secret is required when the todo service is enabled")
		}
	}

	return nil
}
