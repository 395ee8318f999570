package testutil

import "github.com/histlint/histlint/internal/core/ports"

// MockShellConfigAccessor is a mock implementation of the ports.ShellConfigAccessor interface.
type MockShellConfigAccessor struct {
	ExistingAliasesFunc func() (map[string]string, error)
	OptionSettingsFunc  func() (string, error)
}

// ExistingAliases mocks the ExistingAliases method.
func (m *MockShellConfigAccessor) ExistingAliases() (map[string]string, error) {
	if m.ExistingAliasesFunc != nil {
		return m.ExistingAliasesFunc()
	}
	return map[string]string{}, nil
}

// OptionSettings mocks the OptionSettings method.
func (m *MockShellConfigAccessor) OptionSettings() (string, error) {
	if m.OptionSettingsFunc != nil {
		return m.OptionSettingsFunc()
	}
	return "", nil
}

// Ensure MockShellConfigAccessor implements the ports.ShellConfigAccessor interface.
var _ ports.ShellConfigAccessor = (*MockShellConfigAccessor)(nil)
