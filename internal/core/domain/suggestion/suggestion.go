/*
Package suggestion defines the core domain entity for a lint suggestion.
*/
package suggestion

// Severity classifies a suggestion line.
type Severity int

const (
	Info Severity = iota
	Tip
	Warn
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Tip:
		return "tip"
	case Warn:
		return "warn"
	}
	return "unknown"
}

/*
Suggestion represents a single suggestion line emitted by a rule. CaretOffset
is the column at which a "^--" marker is drawn beneath a previously printed
command line. This is a core domain entity.
*/
type Suggestion struct {
	Severity    Severity
	Text        string
	CaretOffset int
}
