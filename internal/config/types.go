package config

import (
	"log/slog"

	"github.com/nixinit/nixinit/internal/foundation"
)

// Config is the nixinit configuration file.
type Config struct {
	// DefaultLanguage pre-selects a language in the interactive selector.
	// It never bypasses the prompt.
	DefaultLanguage string `yaml:"default_language"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`
}

// Language returns the parsed default language, if one is set and valid.
func (c *Config) Language() (foundation.SupportedLanguage, bool) {
	if c.DefaultLanguage == "" {
		return "", false
	}
	return foundation.ParseLanguage(c.DefaultLanguage)
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
