package testutil

import "github.com/histlint/histlint/internal/core/ports"

// MapEnvironmentReader is an EnvironmentReader backed by a plain map, so
// tests never have to mutate the real process environment.
type MapEnvironmentReader struct {
	Values map[string]string
}

// Get returns the mapped value, or "" when absent.
func (m *MapEnvironmentReader) Get(name string) string {
	return m.Values[name]
}

// Lookup returns the mapped value and whether the key is present.
func (m *MapEnvironmentReader) Lookup(name string) (string, bool) {
	value, ok := m.Values[name]
	return value, ok
}

// Ensure MapEnvironmentReader implements the ports.EnvironmentReader interface.
var _ ports.EnvironmentReader = (*MapEnvironmentReader)(nil)
