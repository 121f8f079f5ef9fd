// Package wizard provides the interactive huh-based language selector
// used by nixinit on terminals.
package wizard

import "errors"

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the selector.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoOptions is returned when there is nothing to select.
	ErrNoOptions = errors.New("no options provided")
)

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Wizard brand colors (dark variants; light variants live in the theme).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)
