package ports

// HistoryProvider supplies the raw history lines the corpus is built from.
type HistoryProvider interface {
	// ReadLines returns the raw history lines in file order.
	ReadLines() ([]string, error)

	// FilePath returns the absolute path of the resolved history file.
	FilePath() string

	// SourceIdentifier returns a user-friendly description of the source.
	SourceIdentifier() string

	// ReadableByOthers reports whether the history file is readable by
	// group or other users.
	ReadableByOthers() (bool, error)
}
