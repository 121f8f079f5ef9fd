package foundation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnsupportedLanguage indicates a language value outside the catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// SupportedLanguage identifies one of the languages nixinit can scaffold.
// The underlying value is the lowercase identifier accepted at the prompt.
type SupportedLanguage string

// Catalog languages, in presentation order.
const (
	LangRust   SupportedLanguage = "rust"
	LangDotnet SupportedLanguage = "dotnet"
	LangJava   SupportedLanguage = "java"
	LangNodeJS SupportedLanguage = "nodejs"
	LangGo     SupportedLanguage = "go"
)

// supportedLanguages is the presentation order used by the prompt.
var supportedLanguages = []SupportedLanguage{
	LangRust,
	LangDotnet,
	LangJava,
	LangNodeJS,
	LangGo,
}

// String returns the language identifier.
func (l SupportedLanguage) String() string {
	return string(l)
}

// DisplayName returns the human-readable name, e.g. "NodeJS".
// Unknown values are returned unchanged.
func (l SupportedLanguage) DisplayName() string {
	if info, ok := languageInfos[l]; ok {
		return info.Name
	}
	return string(l)
}

// IsValid reports whether l is part of the catalog.
func (l SupportedLanguage) IsValid() bool {
	_, ok := languageInfos[l]
	return ok
}

// AllSupportedLanguages returns the catalog in presentation order.
// The returned slice is a copy.
func AllSupportedLanguages() []SupportedLanguage {
	out := make([]SupportedLanguage, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// ParseLanguage resolves user input to a catalog language.
// Surrounding whitespace (including the trailing newline of a prompt
// line) is ignored and matching is case-insensitive.
// The second return value is false when nothing matches.
func ParseLanguage(input string) (SupportedLanguage, bool) {
	// cases.Caser keeps state; one per call.
	key := cases.Fold().String(strings.TrimSpace(input))
	if key == "" {
		return "", false
	}
	lang := SupportedLanguage(key)
	if !lang.IsValid() {
		return "", false
	}
	return lang, true
}

// DisplayList renders the catalog as a bracketed, comma-separated list of
// display names: "[Rust, Dotnet, Java, NodeJS, Go]".
func DisplayList() string {
	names := make([]string, len(supportedLanguages))
	for i, l := range supportedLanguages {
		names[i] = l.DisplayName()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// LanguageInfo describes a catalog language for selectors and listings.
type LanguageInfo struct {
	ID          SupportedLanguage `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
}

var languageInfos = map[SupportedLanguage]LanguageInfo{
	LangRust:   {ID: LangRust, Name: "Rust", Description: "Systems programming with cargo"},
	LangDotnet: {ID: LangDotnet, Name: "Dotnet", Description: ".NET SDK with telemetry disabled"},
	LangJava:   {ID: LangJava, Name: "Java", Description: "JDK toolchain"},
	LangNodeJS: {ID: LangNodeJS, Name: "NodeJS", Description: "Node.js 20 runtime"},
	LangGo:     {ID: LangGo, Name: "Go", Description: "Go toolchain"},
}

// LanguageRegistry provides read-only access to catalog metadata.
type LanguageRegistry struct {
	infos map[SupportedLanguage]LanguageInfo
	order []SupportedLanguage
}

// DefaultRegistry is the process-wide catalog registry.
var DefaultRegistry = NewLanguageRegistry()

// NewLanguageRegistry creates a registry over the built-in catalog.
func NewLanguageRegistry() *LanguageRegistry {
	return &LanguageRegistry{
		infos: languageInfos,
		order: supportedLanguages,
	}
}

// Get returns metadata for lang, or an error wrapping
// ErrUnsupportedLanguage.
func (r *LanguageRegistry) Get(lang SupportedLanguage) (*LanguageInfo, error) {
	info, ok := r.infos[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	return &info, nil
}

// All returns metadata for every language in presentation order.
func (r *LanguageRegistry) All() []LanguageInfo {
	out := make([]LanguageInfo, 0, len(r.order))
	for _, l := range r.order {
		out = append(out, r.infos[l])
	}
	return out
}
