package testutil

import "github.com/histlint/histlint/internal/core/ports"

// MockHistoryFileFinder is a mock implementation of the ports.HistoryFileFinder interface.
type MockHistoryFileFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockHistoryFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil
}

// Ensure MockHistoryFileFinder implements the ports.HistoryFileFinder interface.
var _ ports.HistoryFileFinder = (*MockHistoryFileFinder)(nil)
