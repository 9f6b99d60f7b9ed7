// Package config loads the function's runtime configuration from the
// environment. Variables use the PERPLECITY_ prefix with "." nesting, e.g.
// PERPLECITY_LOGGING.LEVEL -> Config.Logging.Level. Every field has a
// default, so the function boots with no configuration at all.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PERPLECITY_"

type Config struct {
	Env     string        `koanf:"env" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Format string `koanf:"format" validate:"required"`
}

func Default() *Config {
	return &Config{
		Env: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads PERPLECITY_-prefixed environment variables over the defaults
// and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("Error loading env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("Error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("Error validating config: %w", err)
	}
	if err := cfg.Logging.validate(); err != nil {
		return nil, fmt.Errorf("Error validating logging config: %w", err)
	}

	return cfg, nil
}

func (c LoggingConfig) validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Format)
	}
	return nil
}
