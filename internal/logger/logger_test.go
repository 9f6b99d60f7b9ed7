package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/manikanta5827/perplecity-clone/internal/config"
)

func TestNewAppliesConfiguredLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"

	log := New(cfg)
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "chatty"

	log := New(cfg)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
