// Package config loads CLI settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds the CLI settings. Flags override every field.
type Config struct {
	// Dir holds form definition files. ENV: DYNFORMS_DIR
	Dir string `env:"DYNFORMS_DIR,default=forms"`
	// Renderer is used when -renderer is not given. ENV: DYNFORMS_RENDERER
	Renderer string `env:"DYNFORMS_RENDERER,default=payload"`
	// LogLevel is one of debug, info, warn, error. ENV: DYNFORMS_LOG_LEVEL
	LogLevel string `env:"DYNFORMS_LOG_LEVEL,default=info"`
}

// Load reads the optional .env files (default ".env") into the process
// environment, then decodes Config. Missing .env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dir == "" {
		c.Dir = "forms"
	}
	if c.Renderer == "" {
		c.Renderer = "payload"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Level maps LogLevel onto a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
