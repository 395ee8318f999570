package ports

/*
EnvironmentReader provides read access to the process environment. Variable
rules read through it at evaluation time, so implementations must reflect
the live environment rather than a cached snapshot.
*/
type EnvironmentReader interface {
	// Get returns the variable's value, or "" when unset.
	Get(name string) string

	// Lookup returns the variable's value and whether it is set.
	Lookup(name string) (string, bool)
}
