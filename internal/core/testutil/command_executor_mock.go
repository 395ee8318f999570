package testutil

import "github.com/histlint/histlint/internal/core/ports"

// MockCommandExecutor is a mock implementation of the ports.CommandExecutor interface.
type MockCommandExecutor struct {
	ExecuteInteractiveFunc func(shellName, command string) (string, string, error)
	RunFunc                func(name string, args ...string) (string, int, error)
}

// ExecuteInteractive mocks the ExecuteInteractive method.
func (m *MockCommandExecutor) ExecuteInteractive(shellName, command string) (string, string, error) {
	if m.ExecuteInteractiveFunc != nil {
		return m.ExecuteInteractiveFunc(shellName, command)
	}
	return "", "", nil
}

// Run mocks the Run method.
func (m *MockCommandExecutor) Run(name string, args ...string) (string, int, error) {
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "", 0, nil
}

// Ensure MockCommandExecutor implements the ports.CommandExecutor interface.
var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
