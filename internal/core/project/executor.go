package project

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nixinit/nixinit/internal/defs"
)

// ApplyResult is the outcome of one intent. Err is nil on success.
type ApplyResult struct {
	Intent FileCreationIntent
	Err    error
}

// Executor applies FileCreationIntents inside a target directory.
type Executor struct {
	root     string
	reporter Reporter
	logger   *slog.Logger
	dryRun   bool
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithReporter sets the Reporter notified after each intent.
func WithReporter(r Reporter) ExecutorOption {
	return func(e *Executor) { e.reporter = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDryRun makes Apply check for conflicts without writing.
func WithDryRun(dryRun bool) ExecutorOption {
	return func(e *Executor) { e.dryRun = dryRun }
}

// NewExecutor creates an Executor rooted at root.
func NewExecutor(root string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		root:     filepath.Clean(root),
		reporter: nopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply creates intent.Path with exactly intent.Content.
// It returns a *CreationError of kind AlreadyExists if the path is
// occupied (the existing file is left untouched) or WriteFailed if the
// write itself fails. A partially written file is not removed.
func (e *Executor) Apply(intent FileCreationIntent) error {
	target := e.resolve(intent.Path)

	if _, err := os.Lstat(target); err == nil {
		return &CreationError{Kind: AlreadyExists, Path: intent.Path}
	}

	if e.dryRun {
		e.logger.Debug("dry run: skipping write", "path", target, "bytes", len(intent.Content))
		return nil
	}

	// O_EXCL closes the window between the existence check and the create.
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &CreationError{Kind: AlreadyExists, Path: intent.Path}
		}
		return &CreationError{Kind: WriteFailed, Path: intent.Path, Err: err}
	}

	if _, err := io.WriteString(f, intent.Content); err != nil {
		_ = f.Close()
		return &CreationError{Kind: WriteFailed, Path: intent.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &CreationError{Kind: WriteFailed, Path: intent.Path, Err: err}
	}

	e.logger.Debug("file created", "path", target, "bytes", len(intent.Content))
	return nil
}

// ApplyAll applies intents in order. A failed intent is reported and
// recorded; later intents are still attempted. If ctx is cancelled the
// remaining intents are recorded with the context error.
func (e *Executor) ApplyAll(ctx context.Context, intents []FileCreationIntent) []ApplyResult {
	results := make([]ApplyResult, 0, len(intents))
	for _, intent := range intents {
		err := ctx.Err()
		if err == nil {
			err = e.Apply(intent)
		}
		results = append(results, ApplyResult{Intent: intent, Err: err})

		if err != nil {
			e.logger.Warn("file creation failed", "path", intent.Path, "error", err)
			e.reporter.FileFailed(intent, err)
			continue
		}
		e.reporter.FileCreated(intent)
	}
	return results
}

func (e *Executor) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(e.root, filepath.FromSlash(path))
}
