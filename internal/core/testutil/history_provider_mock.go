package testutil

import "github.com/histlint/histlint/internal/core/ports"

// MockHistoryProvider is a mock implementation of the ports.HistoryProvider interface.
type MockHistoryProvider struct {
	ReadLinesFunc        func() ([]string, error)
	FilePathFunc         func() string
	SourceIdentifierFunc func() string
	ReadableByOthersFunc func() (bool, error)
}

// ReadLines mocks the ReadLines method.
func (m *MockHistoryProvider) ReadLines() ([]string, error) {
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc()
	}
	return nil, nil
}

// FilePath mocks the FilePath method.
func (m *MockHistoryProvider) FilePath() string {
	if m.FilePathFunc != nil {
		return m.FilePathFunc()
	}
	return ""
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockHistoryProvider) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	return ""
}

// ReadableByOthers mocks the ReadableByOthers method.
func (m *MockHistoryProvider) ReadableByOthers() (bool, error) {
	if m.ReadableByOthersFunc != nil {
		return m.ReadableByOthersFunc()
	}
	return false, nil
}

// Ensure MockHistoryProvider implements the ports.HistoryProvider interface.
var _ ports.HistoryProvider = (*MockHistoryProvider)(nil)
