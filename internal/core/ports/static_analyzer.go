package ports

import "github.com/histlint/histlint/internal/core/domain/shell"

/*
StaticAnalyzer defines the contract for the external static-analysis tool
the shellcheck report section consumes.
*/
type StaticAnalyzer interface {
	// Installed reports whether the tool is available on this system.
	Installed() bool

	/*
	   Analyze runs the tool against the history file. Codes listed in
	   excludeCodes are filtered out, and at most maxFindings distinct new
	   codes are surfaced per finding block. When the shell kind is not
	   supported by the tool, a supported syntax mode is substituted and the
	   substitution is described in note. A non-nil err means the tool could
	   not be invoked, not that findings exist.
	*/
	Analyze(kind shell.Kind, excludeCodes []int, historyFilePath string, maxFindings int) (blocks []string, note string, err error)
}
