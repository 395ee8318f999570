package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/testutil"
)

func writeHistory(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("ls\npwd\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := writeHistory(t, dir, "my_history")

	env := &testutil.MapEnvironmentReader{Values: map[string]string{}}
	finder := NewFileFinder(explicit, shell.Bash, env)

	got, err := finder.Find()
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}
	if got != explicit {
		t.Errorf("Find() = %q, want %q", got, explicit)
	}
}

func TestFindExplicitPathWinsOverHistFile(t *testing.T) {
	dir := t.TempDir()
	explicit := writeHistory(t, dir, "explicit")
	other := writeHistory(t, dir, "from_env")

	env := &testutil.MapEnvironmentReader{Values: map[string]string{"HISTFILE": other}}
	finder := NewFileFinder(explicit, shell.Bash, env)

	got, err := finder.Find()
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}
	if got != explicit {
		t.Errorf("Find() = %q, want the explicit path %q", got, explicit)
	}
}

func TestFindAbsoluteHistFile(t *testing.T) {
	dir := t.TempDir()
	histFile := writeHistory(t, dir, "zsh_history")

	env := &testutil.MapEnvironmentReader{Values: map[string]string{"HISTFILE": histFile}}
	finder := NewFileFinder("", shell.Zsh, env)

	got, err := finder.Find()
	if err != nil {
		t.Fatalf("Find() returned error: %v", err)
	}
	if got != histFile {
		t.Errorf("Find() = %q, want %q", got, histFile)
	}
}

func TestFindMissingFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	env := &testutil.MapEnvironmentReader{Values: map[string]string{}}
	finder := NewFileFinder(filepath.Join(dir, "no_such_file"), shell.Bash, env)

	if _, err := finder.Find(); err == nil {
		t.Error("Find() on a missing file returned nil error")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Find() error = %v, want a not-found diagnostic", err)
	}
}

func TestFindRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	env := &testutil.MapEnvironmentReader{Values: map[string]string{}}
	finder := NewFileFinder(dir, shell.Bash, env)

	if _, err := finder.Find(); err == nil {
		t.Error("Find() on a directory returned nil error")
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	// Paths outside the home directory come back untouched.
	if got := toUserFriendlyPath("/etc/passwd"); got != "/etc/passwd" {
		t.Errorf("toUserFriendlyPath(/etc/passwd) = %q, want the path unchanged", got)
	}
}
