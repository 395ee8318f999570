/*
Package envreader adapts the process environment to the EnvironmentReader
port. Reads go straight to the live environment, which variable rules
require: they run at display time, not corpus-build time.
*/
package envreader

import (
	"os"

	"github.com/histlint/histlint/internal/core/ports"
)

// OSEnvironmentReader reads the live process environment.
type OSEnvironmentReader struct{}

// NewOSEnvironmentReader creates a new OSEnvironmentReader.
func NewOSEnvironmentReader() ports.EnvironmentReader {
	return &OSEnvironmentReader{}
}

// Get implements the ports.EnvironmentReader interface.
func (r *OSEnvironmentReader) Get(name string) string {
	return os.Getenv(name)
}

// Lookup implements the ports.EnvironmentReader interface.
func (r *OSEnvironmentReader) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}
