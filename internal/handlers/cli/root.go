package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/histlint/histlint/internal/core/ports"
	"github.com/histlint/histlint/internal/core/rules"
)

var rootCmd *cobra.Command

// Deps bundles the collaborators the command needs; the history provider is
// built at run time because the history file path may come from the
// command line.
type Deps struct {
	Executor  ports.CommandExecutor
	Env       ports.EnvironmentReader
	Presenter ports.Presenter
	Registry  *rules.Registry
}

func NewRootCommand(version string, deps Deps) *cobra.Command {
	var flags reportFlags

	rootCmd = &cobra.Command{
		Use:   "histlint [history_file]",
		Short: "histlint lints your command-line history.",
		Long: `histlint generates a report against your command-line history and suggests
workflow improvements: frequency statistics, environment-variable
diagnostics, and tips for shortening commands. If shellcheck is installed,
a subset of its warnings is included.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Executor == nil || deps.Env == nil || deps.Presenter == nil || deps.Registry == nil {
				return fmt.Errorf("report dependencies not initialized")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportCmd(args, deps, flags)
		},
	}

	rootCmd.Flags().IntVarP(&flags.topCommands, "top", "t", 0, "Number of bare commands to list (default 5).")
	rootCmd.Flags().IntVarP(&flags.topWithArguments, "top-args", "a", 0, "Number of commands with arguments to list (default 10).")
	rootCmd.Flags().IntVarP(&flags.shellcheckLimit, "shellcheck-limit", "s", 0, "Maximum distinct shellcheck codes per finding (default 10).")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file (default ~/.config/histlint/config.yaml).")

	return rootCmd
}
