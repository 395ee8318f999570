package history

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
)

/*
FileFinder resolves the history file path in priority order: an explicit
path (CLI argument), the HISTFILE environment variable (joined with the
home directory when relative), the shell's conventional history filename,
else the generic ".history" fallback. Whatever candidate wins must exist;
a missing file is a fatal diagnostic, not something to silently skip.
*/
type FileFinder struct {
	explicitPath string
	kind         shell.Kind
	env          ports.EnvironmentReader
}

// NewFileFinder creates a finder. explicitPath may be empty.
func NewFileFinder(explicitPath string, kind shell.Kind, env ports.EnvironmentReader) ports.HistoryFileFinder {
	return &FileFinder{
		explicitPath: explicitPath,
		kind:         kind,
		env:          env,
	}
}

// Find implements the ports.HistoryFileFinder interface.
func (f *FileFinder) Find() (string, error) {
	candidate, err := f.candidate()
	if err != nil {
		return "", err
	}
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("history file %q not found", toUserFriendlyPath(candidate))
	}
	return candidate, nil
}

func (f *FileFinder) candidate() (string, error) {
	if f.explicitPath != "" {
		return f.explicitPath, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	if histFile := f.env.Get("HISTFILE"); histFile != "" {
		if filepath.IsAbs(histFile) {
			return histFile, nil
		}
		return filepath.Join(homeDir, histFile), nil
	}

	return filepath.Join(homeDir, f.kind.DefaultHistoryFile()), nil
}

// toUserFriendlyPath converts an absolute path to a ~/-based path when it
// sits under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir
	if absPath == homeDir {
		return "~"
	}
	rel, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return filepath.Join("~", rel)
}
