/*
Package rules implements the lint-rule engine: an ordered registry of
single-command, window, favorite and environment-variable rules, and the
evaluator that drives them over a corpus.

Rules are side-effecting by design: each one formats and emits its own
suggestion lines through the Context's Presenter (so it can place caret
markers with rule-specific precision) and returns whether it fired. Rules
never mutate the corpus or each other's state.
*/
package rules

import (
	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
)

/*
Context carries the collaborators a rule may consult. The environment is
read live at evaluation time; Aliases holds the user's current shell
aliases and may be nil when they could not be read.
*/
type Context struct {
	Presenter ports.Presenter
	Env       ports.EnvironmentReader
	Shell     shell.Kind
	Aliases   map[string]string
}
