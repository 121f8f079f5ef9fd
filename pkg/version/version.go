// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Build-time variables, overridden with
// -ldflags "-X github.com/nixinit/nixinit/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
