// Package logger builds the zerolog logger shared by the Lambda entrypoint
// and the local invoke harness.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/manikanta5827/perplecity-clone/internal/config"
)

// New returns a logger writing to stderr. Inside Lambda (detected through
// AWS_EXECUTION_ENV) output is always JSON so CloudWatch gets structured
// records; locally the configured format applies.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.Logging.Format == "console" && os.Getenv("AWS_EXECUTION_ENV") == "" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "perplecity").
		Str("env", cfg.Env).
		Logger()
}
