// Package cli provides the Cobra command tree and dependency wiring for
// the nixinit CLI. This file defines the Dependencies struct (Composition
// Root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nixinit/nixinit/internal/config"
	"github.com/nixinit/nixinit/internal/foundation"
	"github.com/nixinit/nixinit/internal/template"
)

// Dependencies holds the services used by CLI commands.
// This is the only place where concrete types are instantiated.
type Dependencies struct {
	Config    *config.Config
	Registry  *foundation.LanguageRegistry
	Generator *template.Generator
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads the configuration at configPath (empty for
// defaults) and wires the domain services. Logging is discarded unless
// verbose is set or the config asks for debug, in which case it goes to
// logOut.
func InitDependencies(configPath string, verbose bool, logOut io.Writer) error {
	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gen, err := template.DefaultGenerator()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	deps = &Dependencies{
		Config:    cfg,
		Registry:  foundation.DefaultRegistry,
		Generator: gen,
		Logger:    newLogger(cfg, verbose, logOut),
	}
	return nil
}

// newLogger builds the CLI logger. Without --verbose or a debug log level
// logging is disabled so it never interleaves with prompt output.
func newLogger(cfg *config.Config, verbose bool, out io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	if !verbose && level != slog.LevelDebug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
