package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/nixinit/nixinit/internal/template"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and the packages they install",
		Args:  cobra.NoArgs,
		RunE:  runLanguages,
	}
}

// runLanguages prints the catalog as a Markdown table, rendered with
// glamour when stdout is a terminal.
func runLanguages(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	md, err := languagesMarkdown()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if deps.Config.NoColor || !isTerminalWriter(out) {
		_, _ = fmt.Fprint(out, md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}

// languagesMarkdown builds the catalog table.
func languagesMarkdown() (string, error) {
	var b strings.Builder
	b.WriteString("# Supported languages\n\n")
	b.WriteString("| Name | Input | Packages | Shell hook |\n")
	b.WriteString("|------|-------|----------|------------|\n")

	for _, info := range deps.Registry.All() {
		env, err := template.RenderEnvironment(info.ID)
		if err != nil {
			return "", err
		}
		hook := "-"
		if len(env.SetupLines) > 0 {
			quoted := make([]string, len(env.SetupLines))
			for i, l := range env.SetupLines {
				quoted[i] = "`" + l + "`"
			}
			hook = strings.Join(quoted, "<br>")
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
			info.Name, info.ID, strings.Join(env.Packages, ", "), hook)
	}
	return b.String(), nil
}
