package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nixinit/nixinit/internal/foundation"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <language>",
		Short: "Print the generated shell.nix (or .envrc) without writing files",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().Bool("envrc", false, "Print the .envrc activation stub instead of shell.nix")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	lang, ok := foundation.ParseLanguage(args[0])
	if !ok {
		return fmt.Errorf("unknown language %q: must be one of: %s", args[0], foundation.DisplayList())
	}

	if getBoolFlag(cmd, "envrc") {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Generator.RenderActivationStub(lang))
		return nil
	}

	content, err := deps.Generator.RenderEnvironmentFile(lang)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
