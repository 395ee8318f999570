package testutil

import (
	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
)

// MockStaticAnalyzer is a mock implementation of the ports.StaticAnalyzer interface.
type MockStaticAnalyzer struct {
	InstalledFunc func() bool
	AnalyzeFunc   func(kind shell.Kind, excludeCodes []int, historyFilePath string, maxFindings int) ([]string, string, error)
}

// Installed mocks the Installed method.
func (m *MockStaticAnalyzer) Installed() bool {
	if m.InstalledFunc != nil {
		return m.InstalledFunc()
	}
	return false
}

// Analyze mocks the Analyze method.
func (m *MockStaticAnalyzer) Analyze(kind shell.Kind, excludeCodes []int, historyFilePath string, maxFindings int) ([]string, string, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(kind, excludeCodes, historyFilePath, maxFindings)
	}
	return nil, "", nil
}

// Ensure MockStaticAnalyzer implements the ports.StaticAnalyzer interface.
var _ ports.StaticAnalyzer = (*MockStaticAnalyzer)(nil)
