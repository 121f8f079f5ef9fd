package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nixinit/nixinit/internal/foundation"
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateDefaultLanguage(cfg.DefaultLanguage)...)
	errs = append(errs, validateLogLevel(cfg.LogLevel)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateDefaultLanguage checks that default_language names a catalog language.
func validateDefaultLanguage(lang string) []ValidationError {
	if lang == "" {
		return nil
	}
	if _, ok := foundation.ParseLanguage(lang); ok {
		return nil
	}
	return []ValidationError{{
		Field:   "default_language",
		Message: fmt.Sprintf("must be one of: %s", foundation.DisplayList()),
		Value:   lang,
		Wrapped: ErrInvalidLanguage,
	}}
}

// validateLogLevel checks that log_level is a recognized value.
func validateLogLevel(level string) []ValidationError {
	if level == "" || slices.Contains(validLogLevels, level) {
		return nil
	}
	return []ValidationError{{
		Field:   "log_level",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		Value:   level,
		Wrapped: ErrInvalidLogLevel,
	}}
}
