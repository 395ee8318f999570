package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/histlint/histlint/internal/core/domain/command"
	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
	"github.com/histlint/histlint/internal/core/rules"
)

var histAppendOffRE = regexp.MustCompile(`histappend[ \t]+off`)

// liveAliases reads the user's current shell aliases. Failure to read them
// only disables alias-aware rules; it never aborts the report.
func (s *Service) liveAliases() map[string]string {
	if s.shellConf == nil {
		return nil
	}
	aliases, err := s.shellConf.ExistingAliases()
	if err != nil {
		return nil
	}
	return aliases
}

// showEnvVar prints one environment-variable line. A non-empty using note
// is appended, e.g. the resolved history file for HISTFILE.
func (s *Service) showEnvVar(name, using string) {
	value := "UNSET"
	if v, ok := s.env.Lookup(name); ok {
		value = fmt.Sprintf("%q", v)
	}
	if using != "" {
		value += fmt.Sprintf(" -- using %q", using)
	}
	s.presenter.EnvVar(name, value)
}

// showEnvVarWithRules prints the variable line and then runs the rules
// registered for it, so tips appear directly beneath the value.
func (s *Service) showEnvVarWithRules(evaluator *rules.Evaluator, name string) {
	s.showEnvVar(name, "")
	evaluator.EvaluateVariable(name)
}

// lintCommandLengths prints the average command length and argument count.
func (s *Service) lintCommandLengths(corpus command.Corpus) {
	text := fmt.Sprintf("Commands average %d characters with ", corpus.AverageLength())
	if args := corpus.AverageArgs(); args == 1 {
		text += "1 argument"
	} else {
		text += fmt.Sprintf("%d arguments", corpus.AverageArgs())
	}
	s.presenter.Info(text, ports.EnvValueColumn)
}

// lintHistoryFilePermissions warns when the history file is readable by
// anyone but its owner.
func (s *Service) lintHistoryFilePermissions() {
	readable, err := s.history.ReadableByOthers()
	if err != nil || !readable {
		return
	}
	s.presenter.Warn(
		fmt.Sprintf("Other users can read this file! Run \"chmod 600 %s\"", s.history.FilePath()),
		ports.EnvValueColumn,
	)
}

// lintAppendOption tips enabling history appending so concurrent sessions
// stop overwriting each other's history.
func (s *Service) lintAppendOption(kind shell.Kind) {
	settings, ok := s.optionSettings()
	if !ok {
		return
	}
	switch {
	case kind.IsBashFamily() && histAppendOffRE.MatchString(settings):
		s.presenter.Tip(`Run "shopt -s histappend" to retain more history`, 0)
	case kind == shell.Zsh && strings.Contains(settings, "noappendhistory"):
		s.presenter.Tip(`Run "setopt appendhistory" to retain more history`, 0)
	}
}

// lintZshDupes tips disabling zsh's duplicate elimination.
func (s *Service) lintZshDupes() {
	settings, ok := s.optionSettings()
	if !ok {
		return
	}
	if !strings.Contains(settings, "histignorealldups") {
		s.presenter.Tip(`Run "unsetopt histignorealldups" to retain more history`, 0)
	}
}

func (s *Service) optionSettings() (string, bool) {
	if s.shellConf == nil {
		return "", false
	}
	settings, err := s.shellConf.OptionSettings()
	if err != nil {
		return "", false
	}
	return settings, true
}

// inIgnoreList reports whether the command is exact-matched by the shell's
// history-exclusion variable.
func (s *Service) inIgnoreList(kind shell.Kind, cmd string) bool {
	varName := kind.HistoryIgnoreVar()
	if varName == "" {
		return false
	}
	for _, pattern := range shell.SplitIgnoreList(kind, s.env.Get(varName)) {
		if pattern == cmd {
			return true
		}
	}
	return false
}
