package ports

// HistoryFileFinder defines the contract for resolving the history file path.
type HistoryFileFinder interface {
	Find() (string, error)
}
