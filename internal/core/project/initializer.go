package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nixinit/nixinit/internal/foundation"
)

// InitOptions configures a scaffolding run.
type InitOptions struct {
	Language  foundation.SupportedLanguage // Selected language.
	TargetDir string                       // Directory to write into. Empty means cwd.
	DryRun    bool                         // If true, check for conflicts but write nothing.
}

// InitResult summarizes a scaffolding run.
type InitResult struct {
	Language     foundation.SupportedLanguage
	TargetDir    string        // Absolute target directory.
	Results      []ApplyResult // One entry per planned intent, in order.
	CreatedFiles []string      // Paths written (or that would be written in dry-run mode).
	DryRun       bool
}

// Failures returns the results whose intent was not applied.
func (r *InitResult) Failures() []ApplyResult {
	var out []ApplyResult
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Initializer handles project scaffolding.
type Initializer interface {
	// Init plans and applies the file intents for opts.Language.
	// File-level failures are recorded in the result, not returned.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	generator ContentGenerator
	reporter  Reporter // May be nil.
	logger    *slog.Logger
}

// NewInitializer creates an Initializer with the given dependencies.
func NewInitializer(gen ContentGenerator, reporter Reporter, logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		generator: gen,
		reporter:  reporter,
		logger:    logger,
	}
}

// Init plans and applies the file intents for opts.Language.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !opts.Language.IsValid() {
		return nil, fmt.Errorf("%w: %q", foundation.ErrUnsupportedLanguage, string(opts.Language))
	}

	root, err := ResolveTargetDir(opts.TargetDir)
	if err != nil {
		return nil, err
	}

	i.logger.Info("initializing project",
		"root", root,
		"language", opts.Language,
		"dryRun", opts.DryRun,
	)

	intents, err := Plan(opts.Language, i.generator)
	if err != nil {
		return nil, fmt.Errorf("plan files: %w", err)
	}

	execOpts := []ExecutorOption{WithLogger(i.logger), WithDryRun(opts.DryRun)}
	if i.reporter != nil {
		execOpts = append(execOpts, WithReporter(i.reporter))
	}
	executor := NewExecutor(root, execOpts...)

	result := &InitResult{
		Language:  opts.Language,
		TargetDir: root,
		DryRun:    opts.DryRun,
		Results:   executor.ApplyAll(ctx, intents),
	}
	for _, res := range result.Results {
		if res.Err == nil {
			result.CreatedFiles = append(result.CreatedFiles, res.Intent.Path)
		}
	}

	i.logger.Info("project initialized",
		"created", len(result.CreatedFiles),
		"failed", len(result.Failures()),
	)

	return result, nil
}
