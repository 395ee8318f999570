package rules

import (
	"fmt"
	"strings"
	"unicode"
)

// Favorite commands shorter than this are candidates for the history-ignore
// tip instead of an alias.
const shortCommandLength = 4

/*
AliasSuggestion proposes an alias for a frequent command with arguments.
The suggested name is built from the first letter of each word, the way
"git status" collapses to "gs". Commands already covered by a live shell
alias are skipped.
*/
func AliasSuggestion(ctx *Context, cmd string, count, total int) bool {
	if !strings.Contains(cmd, " ") {
		return false
	}
	for name, expansion := range ctx.Aliases {
		if name == cmd || strings.Contains(expansion, cmd) {
			return false
		}
	}
	var b strings.Builder
	for _, word := range strings.Fields(cmd) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return false
	}
	ctx.Presenter.Tip(fmt.Sprintf("Consider using an alias: alias %s=\"%s\"", name, cmd), 0)
	return true
}

// HistoryIgnoreSuggestion tips adding very short but frequent commands to
// the shell's history-exclusion variable so they stop crowding the history.
func HistoryIgnoreSuggestion(ctx *Context, cmd string, count, total int) bool {
	if len(cmd) >= shortCommandLength {
		return false
	}
	ignoreVar := ctx.Shell.HistoryIgnoreVar()
	if ignoreVar == "" {
		return false
	}
	ctx.Presenter.Tip("Consider adding frequent but short commands to "+ignoreVar, 0)
	return true
}
