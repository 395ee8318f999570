/*
Package reportconfig loads the optional report configuration from a YAML
file. A missing or empty file is not an error; it simply means defaults.
*/
package reportconfig

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/histlint/histlint/internal/core/ports"
)

const (
	defaultTopCommands      = 5
	defaultTopWithArguments = 10
	defaultShellcheckLimit  = 10
)

// Default returns the built-in report configuration.
func Default() ports.ReportConfig {
	return ports.ReportConfig{
		TopCommands:      defaultTopCommands,
		TopWithArguments: defaultTopWithArguments,
		ShellcheckLimit:  defaultShellcheckLimit,
	}
}

// DefaultPath returns the conventional config file location,
// ~/.config/histlint/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	return filepath.Join(usr.HomeDir, ".config", "histlint", "config.yaml")
}

// YAMLProvider implements the ReportConfigProvider interface by reading a
// YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a provider for the given path. An empty path
// means "defaults only".
func NewYAMLProvider(filePath string) ports.ReportConfigProvider {
	return &YAMLProvider{filePath: filePath}
}

// Load implements the ports.ReportConfigProvider interface. Values absent
// from the file keep their defaults; ShellcheckExclude entries are appended
// to the built-in exclusion list by the caller, not here.
func (p *YAMLProvider) Load() (ports.ReportConfig, error) {
	cfg := Default()
	if p.filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	var parsed ports.ReportConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", p.filePath, err)
	}

	if parsed.TopCommands > 0 {
		cfg.TopCommands = parsed.TopCommands
	}
	if parsed.TopWithArguments > 0 {
		cfg.TopWithArguments = parsed.TopWithArguments
	}
	if parsed.ShellcheckLimit > 0 {
		cfg.ShellcheckLimit = parsed.ShellcheckLimit
	}
	cfg.ShellcheckExclude = parsed.ShellcheckExclude
	return cfg, nil
}
