/*
Package history reads the user's shell history file. It resolves the file
path once at construction and serves raw lines to the corpus builder.
*/
package history

import (
	"bufio"
	"fmt"
	"os"

	"github.com/histlint/histlint/internal/core/ports"
)

// Provider provides access to shell command history stored in a file.
// It implements the ports.HistoryProvider interface.
type Provider struct {
	path             string
	sourceIdentifier string
}

// NewProvider resolves the history file through the finder. A file that
// cannot be resolved is a fatal error for the report.
func NewProvider(finder ports.HistoryFileFinder) (ports.HistoryProvider, error) {
	path, err := finder.Find()
	if err != nil {
		return nil, err
	}
	return &Provider{
		path:             path,
		sourceIdentifier: toUserFriendlyPath(path),
	}, nil
}

// ReadLines implements the ports.HistoryProvider interface. Lines are
// returned as raw bytes-as-string; encoding repair happens during corpus
// normalization, so a corrupt history file never aborts the report.
func (p *Provider) ReadLines() ([]string, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("opening history file %s: %w", p.sourceIdentifier, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Some tools write very long history entries; grow the line buffer
	// beyond bufio's 64K default.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning history file %s: %w", p.sourceIdentifier, err)
	}
	return lines, nil
}

// FilePath implements the ports.HistoryProvider interface.
func (p *Provider) FilePath() string {
	return p.path
}

// SourceIdentifier implements the ports.HistoryProvider interface.
func (p *Provider) SourceIdentifier() string {
	return p.sourceIdentifier
}

// ReadableByOthers implements the ports.HistoryProvider interface.
func (p *Provider) ReadableByOthers() (bool, error) {
	info, err := os.Stat(p.path)
	if err != nil {
		return false, fmt.Errorf("stat history file %s: %w", p.sourceIdentifier, err)
	}
	return info.Mode().Perm()&0o044 != 0, nil
}
