package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("INITIAL_THEME", "")
		t.Setenv("EVENT_BUFFER", "")

		cfg := Load()
		assert.Equal(t, "dev", cfg.AppEnv)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "light", cfg.InitialTheme)
		assert.Equal(t, 16, cfg.EventBuffer)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("INITIAL_THEME", " dark ")
		t.Setenv("EVENT_BUFFER", "4")

		cfg := Load()
		assert.Equal(t, "prod", cfg.AppEnv)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "dark", cfg.InitialTheme)
		assert.Equal(t, 4, cfg.EventBuffer)
	})

	t.Run("bad buffer falls back", func(t *testing.T) {
		t.Setenv("EVENT_BUFFER", "-3")
		assert.Equal(t, 16, Load().EventBuffer)

		t.Setenv("EVENT_BUFFER", "lots")
		assert.Equal(t, 16, Load().EventBuffer)
	})
}
