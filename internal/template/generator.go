package template

import (
	"fmt"
	"sync"

	"github.com/nixinit/nixinit/internal/foundation"
)

// ActivationStub is the .envrc content: it tells direnv to load shell.nix.
const ActivationStub = "use nix"

// environments maps each catalog language to its descriptor contents.
var environments = map[foundation.SupportedLanguage]Environment{
	foundation.LangRust: {
		Packages:   []string{"cargo", "rustc", "rustfmt"},
		SetupLines: []string{"export LD_LIBRARY_PATH=$NIX_LD_LIBRARY_PATH"},
	},
	foundation.LangGo: {
		Packages: []string{"go"},
	},
	foundation.LangJava: {
		Packages: []string{"jdk"},
	},
	foundation.LangNodeJS: {
		Packages: []string{"nodejs_20"},
	},
	foundation.LangDotnet: {
		Packages: []string{"dotnet-sdk"},
		SetupLines: []string{
			"export DOTNET_CLI_TELEMETRY_OPTOUT=1",
			"export DOTNET_ROOT=${pkgs.dotnet-sdk}",
		},
	},
}

// RenderEnvironment returns the package list and shell hook lines for lang.
// The returned slices are copies.
func RenderEnvironment(lang foundation.SupportedLanguage) (Environment, error) {
	env, ok := environments[lang]
	if !ok {
		return Environment{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}
	return env.clone(), nil
}

// Generator produces file contents for a language.
type Generator struct {
	renderer Renderer
}

// NewGenerator creates a Generator that renders the descriptor through r.
// r must provide EnvironmentTemplate.
func NewGenerator(r Renderer) *Generator {
	return &Generator{renderer: r}
}

var defaultGenerator = sync.OnceValues(func() (*Generator, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return NewGenerator(NewRenderer(fsys)), nil
})

// DefaultGenerator returns the Generator backed by the embedded templates.
func DefaultGenerator() (*Generator, error) {
	return defaultGenerator()
}

// RenderEnvironmentFile renders the complete shell.nix text for lang.
func (g *Generator) RenderEnvironmentFile(lang foundation.SupportedLanguage) (string, error) {
	env, err := RenderEnvironment(lang)
	if err != nil {
		return "", err
	}
	out, err := g.renderer.Render(EnvironmentTemplate, env)
	if err != nil {
		return "", fmt.Errorf("render %s for %s: %w", EnvironmentTemplate, lang, err)
	}
	return string(out), nil
}

// RenderActivationStub returns the .envrc content for a language.
// Every language currently shares the same stub.
func (g *Generator) RenderActivationStub(_ foundation.SupportedLanguage) string {
	return ActivationStub
}

// RenderEnvironmentFile renders shell.nix for lang with the default Generator.
func RenderEnvironmentFile(lang foundation.SupportedLanguage) (string, error) {
	g, err := DefaultGenerator()
	if err != nil {
		return "", err
	}
	return g.RenderEnvironmentFile(lang)
}

// RenderActivationStub returns the .envrc content for a language.
func RenderActivationStub(_ foundation.SupportedLanguage) string {
	return ActivationStub
}
