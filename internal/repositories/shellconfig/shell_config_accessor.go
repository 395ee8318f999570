/*
Package shellconfig reads live configuration out of the user's shell by
running an interactive instance of it: defined aliases and option settings
(shopt/setopt). Interactive mode matters; a non-interactive shell would not
source the files that define aliases.
*/
package shellconfig

import (
	"fmt"

	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
)

// ShellConfigAccessor implements ports.ShellConfigAccessor on top of a
// CommandExecutor.
type ShellConfigAccessor struct {
	shellName string
	kind      shell.Kind
	executor  ports.CommandExecutor
}

// NewShellConfigAccessor creates an accessor for the named shell. It panics
// if executor is nil.
func NewShellConfigAccessor(kind shell.Kind, shellName string, executor ports.CommandExecutor) ports.ShellConfigAccessor {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &ShellConfigAccessor{
		shellName: shellName,
		kind:      kind,
		executor:  executor,
	}
}

// ExistingAliases implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) ExistingAliases() (map[string]string, error) {
	stdout, stderr, err := sca.executor.ExecuteInteractive(sca.shellName, "alias")
	if err != nil {
		return nil, fmt.Errorf("listing shell aliases: %w (stderr: %s)", err, stderr)
	}
	return parseAliasOutput(stdout), nil
}

// OptionSettings implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) OptionSettings() (string, error) {
	var listCmd string
	switch {
	case sca.kind.IsBashFamily():
		listCmd = "shopt"
	case sca.kind == shell.Zsh:
		listCmd = "setopt"
	default:
		return "", fmt.Errorf("no option listing command for shell %q", sca.shellName)
	}
	stdout, stderr, err := sca.executor.ExecuteInteractive(sca.shellName, listCmd)
	if err != nil {
		return "", fmt.Errorf("running %s: %w (stderr: %s)", listCmd, err, stderr)
	}
	return stdout, nil
}
