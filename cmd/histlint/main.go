package main

import (
	"os"

	"github.com/histlint/histlint/internal/adapters/envreader"
	"github.com/histlint/histlint/internal/adapters/oscommand"
	"github.com/histlint/histlint/internal/core/rules"
	"github.com/histlint/histlint/internal/handlers/cli"
	"github.com/histlint/histlint/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := cli.Deps{
		Executor:  oscommand.NewOSCommandExecutor(),
		Env:       envreader.NewOSEnvironmentReader(),
		Presenter: ui.NewConsolePresenter(os.Stdout),
		Registry:  rules.DefaultRegistry(),
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
