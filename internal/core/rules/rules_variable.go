package rules

import (
	"strings"

	"github.com/histlint/histlint/internal/core/ports"
)

// Histories smaller than this are worth a tip to grow them.
const minHistorySize = 5000

// HistSize tips increasing HISTSIZE when it is set to a small bound. The -1
// sentinel (unset or non-numeric) means unbounded and never fires.
func HistSize(ctx *Context) bool {
	value := Sanitize(ctx.Env, "HISTSIZE")
	if value < 0 || value >= minHistorySize {
		return false
	}
	ctx.Presenter.Tip("Increase/set HISTSIZE to retain history", ports.EnvValueColumn)
	return true
}

// HistFileSize checks bash's HISTFILESIZE: it should be generous and at
// least as large as HISTSIZE. Both tips may print for the same value.
func HistFileSize(ctx *Context) bool {
	return fileSizeChecks(ctx, "HISTFILESIZE")
}

// SaveHist applies the same two checks as HistFileSize to zsh's SAVEHIST.
func SaveHist(ctx *Context) bool {
	return fileSizeChecks(ctx, "SAVEHIST")
}

func fileSizeChecks(ctx *Context, name string) bool {
	fired := false
	value := Sanitize(ctx.Env, name)
	if value >= 0 && value < minHistorySize {
		ctx.Presenter.Tip("Increase/set "+name+" to retain more history", ports.EnvValueColumn)
		fired = true
	}
	if value >= 0 && value < Sanitize(ctx.Env, "HISTSIZE") {
		ctx.Presenter.Tip("Set "+name+" >= HISTSIZE", ports.EnvValueColumn)
		fired = true
	}
	return fired
}

// HistControl tips removing deduplication flags from HISTCONTROL; they
// discard history that might be worth keeping.
func HistControl(ctx *Context) bool {
	value := ctx.Env.Get("HISTCONTROL")
	if !strings.Contains(value, "ignoredups") && !strings.Contains(value, "erasedups") {
		return false
	}
	ctx.Presenter.Tip(`Remove "ignoredups" and "erasedups" to retain more history`, ports.EnvValueColumn)
	return true
}
