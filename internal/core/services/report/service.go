/*
Package report orchestrates the lint report: it builds the corpus, drives
the rule evaluator section by section in a fixed order, and delegates all
formatting to the Presenter.
*/
package report

import (
	"fmt"

	"github.com/histlint/histlint/internal/core/domain/command"
	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
	"github.com/histlint/histlint/internal/core/rules"
)

type Service struct {
	history   ports.HistoryProvider
	presenter ports.Presenter
	env       ports.EnvironmentReader
	shellConf ports.ShellConfigAccessor
	analyzer  ports.StaticAnalyzer
	registry  *rules.Registry
	cfg       ports.ReportConfig
}

/*
NewService creates the report service. It panics if history, presenter, env
or registry is nil. shellConf and analyzer are optional collaborators: a nil
shellConf skips alias and shell-option lints, a nil analyzer renders the
shellcheck section as not installed.
*/
func NewService(
	history ports.HistoryProvider,
	presenter ports.Presenter,
	env ports.EnvironmentReader,
	shellConf ports.ShellConfigAccessor,
	analyzer ports.StaticAnalyzer,
	registry *rules.Registry,
	cfg ports.ReportConfig,
) *Service {
	if history == nil {
		panic("historyProvider cannot be nil")
	}
	if presenter == nil {
		panic("presenter cannot be nil")
	}
	if env == nil {
		panic("environmentReader cannot be nil")
	}
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &Service{
		history:   history,
		presenter: presenter,
		env:       env,
		shellConf: shellConf,
		analyzer:  analyzer,
		registry:  registry,
		cfg:       cfg,
	}
}

// Run produces the full report. Section order is fixed: Overview, Top N,
// Top N with arguments, Miscellaneous, Shellcheck.
func (s *Service) Run() error {
	lines, err := s.history.ReadLines()
	if err != nil {
		return fmt.Errorf("reading history file: %w", err)
	}

	kind := shell.DetectKind(s.env.Get("SHELL"))
	corpus := command.NewCorpus(lines, kind)
	if corpus.Len() == 0 {
		s.presenter.Plain("History file is empty; nothing to report.")
		return nil
	}

	ctx := &rules.Context{
		Presenter: s.presenter,
		Env:       s.env,
		Shell:     kind,
		Aliases:   s.liveAliases(),
	}
	evaluator := rules.NewEvaluator(s.registry, ctx)

	s.reportOverview(corpus, evaluator, kind)
	s.reportTopCommands(corpus)
	s.reportTopWithArguments(corpus, evaluator, kind)
	s.reportMiscellaneous(corpus, evaluator)
	s.reportShellcheck(kind)
	return nil
}

// reportOverview prints environment settings and the lints attached to
// them. Variable rules run at display time, against the live environment.
func (s *Service) reportOverview(corpus command.Corpus, evaluator *rules.Evaluator, kind shell.Kind) {
	s.presenter.Header("Overview", false)
	s.showEnvVar("SHELL", "")
	s.showEnvVar("HISTFILE", s.history.SourceIdentifier())
	s.lintCommandLengths(corpus)
	s.lintHistoryFilePermissions()
	s.showEnvVarWithRules(evaluator, "HISTSIZE")

	switch {
	case kind.IsBashFamily():
		s.showEnvVarWithRules(evaluator, "HISTFILESIZE")
		s.showEnvVarWithRules(evaluator, "HISTIGNORE")
		s.showEnvVarWithRules(evaluator, "HISTCONTROL")
		s.lintAppendOption(kind)
	case kind == shell.Zsh:
		s.showEnvVarWithRules(evaluator, "SAVEHIST")
		s.showEnvVarWithRules(evaluator, "HISTORY_IGNORE")
		s.lintZshDupes()
		s.lintAppendOption(kind)
	}
}

// reportTopCommands tabulates the most frequent bare command names.
func (s *Service) reportTopCommands(corpus command.Corpus) {
	s.presenter.Header(fmt.Sprintf("Top %d", s.cfg.TopCommands), true)
	s.presenter.FrequencyTable(corpus.TopPrefixes(s.cfg.TopCommands), corpus.Len())
}

/*
reportTopWithArguments lists the favorite commands (with arguments) and
runs the frequency-gated rules on each, unless the command is excluded by
the shell's history-ignore list.
*/
func (s *Service) reportTopWithArguments(corpus command.Corpus, evaluator *rules.Evaluator, kind shell.Kind) {
	s.presenter.Header(fmt.Sprintf("Top %d with arguments", s.cfg.TopWithArguments), true)
	total := corpus.Len()
	for _, favorite := range corpus.Favorites(s.cfg.TopWithArguments) {
		s.presenter.CommandStats(favorite.Command, favorite.Count, total)
		if s.inIgnoreList(kind, favorite.Command) {
			continue
		}
		evaluator.EvaluateFavorite(favorite.Command, favorite.Count, total)
	}
}

// reportMiscellaneous runs the single-command and window rules.
func (s *Service) reportMiscellaneous(corpus command.Corpus, evaluator *rules.Evaluator) {
	s.presenter.Header("Miscellaneous", true)
	evaluator.EvaluateSingles(corpus)
	evaluator.EvaluateWindows(corpus)
}

// reportShellcheck surfaces findings from the external static-analysis
// tool. A missing tool is informational, never an error.
func (s *Service) reportShellcheck(kind shell.Kind) {
	s.presenter.Header("Shellcheck", true)
	if s.analyzer == nil || !s.analyzer.Installed() {
		s.presenter.Plain("Shellcheck not installed - see https://www.shellcheck.net")
		return
	}
	blocks, note, err := s.analyzer.Analyze(kind, s.cfg.ShellcheckExclude, s.history.FilePath(), s.cfg.ShellcheckLimit)
	if note != "" {
		s.presenter.Plain(note)
	}
	if err != nil {
		s.presenter.Plain(fmt.Sprintf("Could not run shellcheck: %v", err))
		return
	}
	if len(blocks) == 0 {
		s.presenter.Plain("Nothing to report.")
		return
	}
	for _, block := range blocks {
		s.presenter.AnalysisFinding(block)
	}
}
