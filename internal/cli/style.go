package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nixinit/nixinit/internal/core/project"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// kvPair is a label/value row in a card.
type kvPair struct {
	Key   string
	Value string
}

// cardStyle returns a lipgloss style for a rounded-border card.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderKeyValueLines aligns pairs into "key  value" rows.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = cliMuted.Render(fmt.Sprintf("%-*s", width, p.Key)) + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(cliSuccess.Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

// renderInitSummary describes a completed run. Plain text when noColor is set.
func renderInitSummary(result *project.InitResult, noColor bool) string {
	pairs := []kvPair{
		{"Language", result.Language.DisplayName()},
		{"Directory", result.TargetDir},
		{"Files", strings.Join(result.CreatedFiles, ", ")},
	}
	failures := result.Failures()
	if len(failures) > 0 {
		pairs = append(pairs, kvPair{"Skipped", fmt.Sprintf("%d", len(failures))})
	}

	if noColor {
		var b strings.Builder
		b.WriteString("Project environment created\n")
		for _, p := range pairs {
			fmt.Fprintf(&b, "  %s: %s\n", p.Key, p.Value)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	details := []string{renderKeyValueLines(pairs)}
	if len(failures) > 0 {
		details = append(details, "", cliWarn.Render("Warning: some files were not created (see errors above)"))
	}
	details = append(details, "", cliMuted.Render("Run `direnv allow` to activate the environment."))
	return renderSuccessCard("Project environment created", details...)
}

// renderFilePreview shows a file that a dry run would write.
func renderFilePreview(path, content string, noColor bool) string {
	header := "--- " + path + " ---"
	if !noColor {
		header = cliPrimary.Bold(true).Render(header)
	}
	return header + "\n" + content
}
