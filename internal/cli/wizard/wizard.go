package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nixinit/nixinit/internal/foundation"
)

// LanguageOptions builds selector options from the registry, in catalog order.
func LanguageOptions(r *foundation.LanguageRegistry) []Option {
	infos := r.All()
	opts := make([]Option, len(infos))
	for i, info := range infos {
		opts[i] = Option{Label: info.Name, Value: info.ID.String(), Desc: info.Description}
	}
	return opts
}

// orderWithDefault moves the option whose value is def to the front.
// huh v0.8.x scrolls the viewport so the initial selection is the top row,
// hiding options above it; keeping the default first avoids that.
func orderWithDefault(opts []Option, def string) []Option {
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if o.Value == def {
			out = append(out, o)
		}
	}
	for _, o := range opts {
		if o.Value != def {
			out = append(out, o)
		}
	}
	return out
}

// buildLanguageSelect creates the huh.Select field bound to value.
func buildLanguageSelect(opts []Option, value *string) *huh.Select[string] {
	hopts := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		hopts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title("Select a language").
		Description("shell.nix and .envrc will be generated for it.").
		Options(hopts...).
		Value(value)
}

// SelectLanguage runs the selector and returns the chosen language.
// def, if valid, is offered first and pre-selected.
func SelectLanguage(r *foundation.LanguageRegistry, def foundation.SupportedLanguage) (foundation.SupportedLanguage, error) {
	opts := LanguageOptions(r)
	if len(opts) == 0 {
		return "", ErrNoOptions
	}
	if def.IsValid() {
		opts = orderWithDefault(opts, def.String())
	}

	selected := opts[0].Value
	form := huh.NewForm(huh.NewGroup(buildLanguageSelect(opts, &selected))).
		WithTheme(newNixWizardTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("wizard error: %w", err)
	}

	lang, ok := foundation.ParseLanguage(selected)
	if !ok {
		return "", fmt.Errorf("wizard error: %w: %q", foundation.ErrUnsupportedLanguage, selected)
	}
	return lang, nil
}

// newNixWizardTheme creates a huh.Theme with the nixinit palette.
func newNixWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
