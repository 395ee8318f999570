/*
Package shell defines the shell kinds the linter distinguishes and the
shell-specific conventions (default history files, history-ignore variables)
that depend on them.
*/
package shell

import (
	"path/filepath"
	"strings"
)

// Kind identifies the family of shell whose history is being analyzed.
type Kind int

const (
	Other Kind = iota
	Bash
	Sh
	Zsh
)

// String returns the shell's conventional executable name.
func (k Kind) String() string {
	switch k {
	case Bash:
		return "bash"
	case Sh:
		return "sh"
	case Zsh:
		return "zsh"
	}
	return "other"
}

// KindFromName maps a shell executable name (e.g. "bash") to a Kind.
func KindFromName(name string) Kind {
	switch strings.ToLower(name) {
	case "bash":
		return Bash
	case "sh":
		return Sh
	case "zsh":
		return Zsh
	}
	return Other
}

// DetectKind derives the shell kind from the value of the SHELL environment
// variable (a path like "/bin/zsh" or a bare name).
func DetectKind(shellPath string) Kind {
	if shellPath == "" {
		return Other
	}
	return KindFromName(filepath.Base(shellPath))
}

// IsBashFamily reports whether the shell uses bash-style history variables
// (HISTFILESIZE, HISTIGNORE, HISTCONTROL).
func (k Kind) IsBashFamily() bool {
	return k == Bash || k == Sh
}

// HistoryIgnoreVar returns the name of the variable holding the shell's
// history-exclusion list, or "" when the shell has none.
func (k Kind) HistoryIgnoreVar() string {
	switch {
	case k.IsBashFamily():
		return "HISTIGNORE"
	case k == Zsh:
		return "HISTORY_IGNORE"
	}
	return ""
}

// DefaultHistoryFile returns the conventional history filename for the shell,
// relative to the user's home directory.
func (k Kind) DefaultHistoryFile() string {
	switch k {
	case Bash, Sh:
		return ".bash_history"
	case Zsh:
		return ".zsh_history"
	}
	// Generic fallback, typical for csh-like shells.
	return ".history"
}

// SplitIgnoreList splits the value of the shell's history-exclusion variable
// into individual patterns. Bash-family shells use a colon-separated list;
// zsh uses an alternation pattern like "(ls|pwd|cd ..)".
func SplitIgnoreList(k Kind, value string) []string {
	if value == "" {
		return nil
	}
	switch {
	case k.IsBashFamily():
		return strings.Split(value, ":")
	case k == Zsh:
		trimmed := strings.TrimSuffix(strings.TrimPrefix(value, "("), ")")
		return strings.Split(trimmed, "|")
	}
	return nil
}
