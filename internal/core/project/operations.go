package project

import (
	"fmt"

	"github.com/nixinit/nixinit/internal/defs"
	"github.com/nixinit/nixinit/internal/foundation"
)

// FileCreationIntent is a deferred write of Content to Path.
// Path is relative to the executor's target directory.
type FileCreationIntent struct {
	Path    string
	Content string
}

// ContentGenerator renders the files for a language.
// *template.Generator satisfies it.
type ContentGenerator interface {
	RenderEnvironmentFile(lang foundation.SupportedLanguage) (string, error)
	RenderActivationStub(lang foundation.SupportedLanguage) string
}

// Plan returns the intents for lang: shell.nix, then .envrc.
func Plan(lang foundation.SupportedLanguage, gen ContentGenerator) ([]FileCreationIntent, error) {
	shell, err := gen.RenderEnvironmentFile(lang)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", defs.ShellNix, err)
	}
	return []FileCreationIntent{
		{Path: defs.ShellNix, Content: shell},
		{Path: defs.EnvRC, Content: gen.RenderActivationStub(lang)},
	}, nil
}
