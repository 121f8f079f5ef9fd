package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nixinit/nixinit/internal/cli/wizard"
	"github.com/nixinit/nixinit/internal/core/project"
	"github.com/nixinit/nixinit/internal/foundation"
)

// addInitFlags registers the flags of the init workflow on cmd.
func addInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", "", "Language to scaffold (skips the prompt)")
	cmd.Flags().StringP("dir", "C", "", "Target directory (default: current directory)")
	cmd.Flags().Bool("dry-run", false, "Show what would be written without creating files")
	cmd.Flags().Bool("tui", false, "Use the interactive selector when stdin is a terminal")
}

// runInit executes the scaffolding workflow: select a language, then
// create shell.nix and .envrc. File failures are reported on stderr but
// do not fail the command.
func runInit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	lang, err := selectLanguage(cmd)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Initialization cancelled.")
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Creating a new %s project\n", lang.DisplayName())

	dryRun := getBoolFlag(cmd, "dry-run")
	reporter := project.NewConsoleReporter(out, cmd.ErrOrStderr())
	reporter.DryRun = dryRun

	initializer := project.NewInitializer(deps.Generator, reporter, deps.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := initializer.Init(ctx, project.InitOptions{
		Language:  lang,
		TargetDir: getStringFlag(cmd, "dir"),
		DryRun:    dryRun,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	if dryRun {
		for _, res := range result.Results {
			if res.Err == nil {
				_, _ = fmt.Fprintln(out, renderFilePreview(res.Intent.Path, res.Intent.Content, deps.Config.NoColor))
			}
		}
		return nil
	}

	if len(result.CreatedFiles) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, renderInitSummary(result, deps.Config.NoColor))
	}
	return nil
}

// selectLanguage resolves the language from --language, the huh selector
// (--tui on a terminal), or the line prompt, in that order.
func selectLanguage(cmd *cobra.Command) (foundation.SupportedLanguage, error) {
	if name := getStringFlag(cmd, "language"); name != "" {
		lang, ok := foundation.ParseLanguage(name)
		if !ok {
			return "", fmt.Errorf("invalid --language value %q: must be one of: %s", name, foundation.DisplayList())
		}
		return lang, nil
	}

	if getBoolFlag(cmd, "tui") && isTerminalReader(cmd.InOrStdin()) {
		def, _ := deps.Config.Language()
		return wizard.SelectLanguage(deps.Registry, def)
	}

	return promptLanguage(cmd.InOrStdin(), cmd.OutOrStdout())
}

// isTerminalReader reports whether r is a terminal-backed file.
func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// isTerminalWriter reports whether w is a terminal-backed file.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
