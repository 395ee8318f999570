package oscommand

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/histlint/histlint/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the
// operating system's shell and process facilities.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// ExecuteInteractive runs command through an interactive instance of the
// named shell and returns its stdout, stderr, and any error. It uses the
// system's SHELL path when set, falling back to conventional locations.
func (e *OSCommandExecutor) ExecuteInteractive(shellName, command string) (string, string, error) {
	shellExecPath := os.Getenv("SHELL")
	if shellExecPath == "" {
		switch shellName {
		case "bash":
			shellExecPath = "/bin/bash"
		case "zsh":
			shellExecPath = "/bin/zsh"
		default:
			shellExecPath = "/bin/sh"
		}
	}

	cmd := exec.Command(shellExecPath, "-i", "-c", command)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("executing %q with shell '%s': %w. Stderr: %s",
			command, shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

/*
Run executes a program directly. A non-zero exit status is returned through
exitCode with a nil error; a non-nil error means the program could not be
started (missing binary, permissions).
*/
func (e *OSCommandExecutor) Run(name string, args ...string) (string, int, error) {
	cmd := exec.Command(name, args...)
	var outBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &bytes.Buffer{}

	err := cmd.Run()
	stdout := outBuf.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout, exitErr.ExitCode(), nil
		}
		return stdout, -1, fmt.Errorf("launching %s: %w", name, err)
	}
	return stdout, 0, nil
}
