package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nixinit/nixinit/pkg/version"
)

// newRootCmd builds the command tree. The root command itself runs the
// init workflow.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nixinit",
		Short: "Scaffold a nix-shell development environment",
		Long: `nixinit asks for a programming language and writes two files into
the target directory:

  shell.nix   a nix-shell environment with the language toolchain
  .envrc      a direnv stub ("use nix") that loads it automatically

Existing files are never overwritten.`,
		Version:           version.GetVersion(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadDependencies,
		RunE:              runInit,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("nixinit %s\n", version.GetFullVersion()))

	cmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	addInitFlags(cmd)

	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newRenderCmd())

	return cmd
}

// Execute builds the command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

// loadDependencies initializes the composition root once flags are parsed.
func loadDependencies(cmd *cobra.Command, _ []string) error {
	return InitDependencies(
		getStringFlag(cmd, "config"),
		getBoolFlag(cmd, "verbose"),
		cmd.ErrOrStderr(),
	)
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
