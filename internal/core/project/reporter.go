package project

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives per-intent outcomes as ApplyAll progresses.
type Reporter interface {
	FileCreated(intent FileCreationIntent)
	FileFailed(intent FileCreationIntent, err error)
}

// ConsoleReporter prints outcomes: failures as "Error: <message>" on the
// error stream, successes as "Created <path>" on the output stream.
type ConsoleReporter struct {
	out    io.Writer
	errOut io.Writer

	// DryRun switches success lines to "Would create <path>".
	DryRun bool
}

// NewConsoleReporter creates a ConsoleReporter writing to out and errOut.
// Nil writers default to os.Stdout and os.Stderr.
func NewConsoleReporter(out, errOut io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &ConsoleReporter{out: out, errOut: errOut}
}

// FileCreated implements Reporter.
func (r *ConsoleReporter) FileCreated(intent FileCreationIntent) {
	if r.DryRun {
		_, _ = fmt.Fprintf(r.out, "Would create %s\n", intent.Path)
		return
	}
	_, _ = fmt.Fprintf(r.out, "Created %s\n", intent.Path)
}

// FileFailed implements Reporter.
func (r *ConsoleReporter) FileFailed(_ FileCreationIntent, err error) {
	_, _ = fmt.Fprintf(r.errOut, "Error: %v\n", err)
}

type nopReporter struct{}

func (nopReporter) FileCreated(FileCreationIntent)        {}
func (nopReporter) FileFailed(FileCreationIntent, error) {}
