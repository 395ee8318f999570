package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/histlint/histlint/internal/adapters/shellcheck"
	"github.com/histlint/histlint/internal/core/rules"
	"github.com/histlint/histlint/internal/core/testutil"
)

func testDeps(presenter *testutil.RecordingPresenter, env map[string]string) Deps {
	return Deps{
		Executor: &testutil.MockCommandExecutor{
			ExecuteInteractiveFunc: func(shellName, command string) (string, string, error) {
				return "", "", nil
			},
			RunFunc: func(name string, args ...string) (string, int, error) {
				return "", 0, errors.New("executable file not found")
			},
		},
		Env:       &testutil.MapEnvironmentReader{Values: env},
		Presenter: presenter,
		Registry:  rules.DefaultRegistry(),
	}
}

func writeHistoryFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandProducesReport(t *testing.T) {
	histFile := writeHistoryFile(t, "ls -la\ngit status\ngit status\n")
	presenter := &testutil.RecordingPresenter{}
	cmd := NewRootCommand("test", testDeps(presenter, map[string]string{"SHELL": "/bin/bash"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{histFile, "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := []string{"Overview", "Top 5", "Top 10 with arguments", "Miscellaneous", "Shellcheck"}
	if !reflect.DeepEqual(presenter.Headers, want) {
		t.Errorf("section headers = %v, want %v", presenter.Headers, want)
	}
}

func TestRootCommandMissingHistoryFile(t *testing.T) {
	presenter := &testutil.RecordingPresenter{}
	cmd := NewRootCommand("test", testDeps(presenter, map[string]string{"SHELL": "/bin/bash"}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "no_such_history")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() on a missing history file returned nil error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want a not-found diagnostic", err)
	}
}

func TestRootCommandRejectsExtraArguments(t *testing.T) {
	presenter := &testutil.RecordingPresenter{}
	cmd := NewRootCommand("test", testDeps(presenter, map[string]string{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"one", "two"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with two positional arguments returned nil error")
	}
}

func TestRootCommandRejectsMissingDependencies(t *testing.T) {
	cmd := NewRootCommand("test", Deps{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with empty dependencies returned nil error")
	}
}

func TestLoadConfigLayering(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "topCommands: 7\nshellcheckLimit: 4\nshellcheckExclude: [2016]\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Flags beat the file; the file beats defaults.
	cfg, err := loadConfig(reportFlags{topCommands: 3, configPath: configPath})
	if err != nil {
		t.Fatalf("loadConfig() returned error: %v", err)
	}
	if cfg.TopCommands != 3 {
		t.Errorf("TopCommands = %d, want the flag value 3", cfg.TopCommands)
	}
	if cfg.ShellcheckLimit != 4 {
		t.Errorf("ShellcheckLimit = %d, want the file value 4", cfg.ShellcheckLimit)
	}
	if cfg.TopWithArguments != 10 {
		t.Errorf("TopWithArguments = %d, want the default 10", cfg.TopWithArguments)
	}

	want := append(append([]int{}, shellcheck.DefaultExcludes...), 2016)
	if !reflect.DeepEqual(cfg.ShellcheckExclude, want) {
		t.Errorf("ShellcheckExclude = %v, want built-ins followed by the file's additions", cfg.ShellcheckExclude)
	}
}
