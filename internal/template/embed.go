package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// EnvironmentTemplate is the name of the shell.nix template inside the
// embedded filesystem.
const EnvironmentTemplate = "shell.nix.tmpl"

// EmbeddedTemplates returns the built-in template filesystem rooted at
// the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}
