package cli

import (
	"fmt"

	"github.com/histlint/histlint/internal/adapters/reportconfig"
	"github.com/histlint/histlint/internal/adapters/shellcheck"
	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
	"github.com/histlint/histlint/internal/core/services/report"
	"github.com/histlint/histlint/internal/repositories/history"
	"github.com/histlint/histlint/internal/repositories/shellconfig"
)

type reportFlags struct {
	topCommands      int
	topWithArguments int
	shellcheckLimit  int
	configPath       string
}

// runReportCmd wires the per-run collaborators and produces the report.
func runReportCmd(args []string, deps Deps, flags reportFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	shellPath := deps.Env.Get("SHELL")
	kind := shell.DetectKind(shellPath)

	explicitPath := ""
	if len(args) > 0 {
		explicitPath = args[0]
	}
	finder := history.NewFileFinder(explicitPath, kind, deps.Env)
	historyProvider, err := history.NewProvider(finder)
	if err != nil {
		return err
	}

	shellConf := shellconfig.NewShellConfigAccessor(kind, kind.String(), deps.Executor)
	analyzer := shellcheck.NewAnalyzer(deps.Executor)

	svc := report.NewService(
		historyProvider,
		deps.Presenter,
		deps.Env,
		shellConf,
		analyzer,
		deps.Registry,
		cfg,
	)
	if err := svc.Run(); err != nil {
		return fmt.Errorf("could not generate report: %w", err)
	}
	return nil
}

/*
loadConfig merges the three configuration layers: built-in defaults, the
YAML config file, and command-line flags (highest precedence). The config
file's exclusions extend the built-in shellcheck exclusion list.
*/
func loadConfig(flags reportFlags) (ports.ReportConfig, error) {
	configPath := flags.configPath
	if configPath == "" {
		configPath = reportconfig.DefaultPath()
	}
	cfg, err := reportconfig.NewYAMLProvider(configPath).Load()
	if err != nil {
		return cfg, err
	}

	cfg.ShellcheckExclude = append(append([]int{}, shellcheck.DefaultExcludes...), cfg.ShellcheckExclude...)

	if flags.topCommands > 0 {
		cfg.TopCommands = flags.topCommands
	}
	if flags.topWithArguments > 0 {
		cfg.TopWithArguments = flags.topWithArguments
	}
	if flags.shellcheckLimit > 0 {
		cfg.ShellcheckLimit = flags.shellcheckLimit
	}
	return cfg, nil
}
