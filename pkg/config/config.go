package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// InitialTheme is parsed by the theme store; "light" or "dark".
	InitialTheme string
	EventBuffer  int
}

func Load() Config {
	return Config{
		AppEnv:       getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		InitialTheme: getEnv("INITIAL_THEME", "light"),
		EventBuffer:  getEnvInt("EVENT_BUFFER", 16),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}

	return n
}
