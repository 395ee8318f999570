/*
Package shellcheck integrates the external shellcheck tool. A non-zero
exit with parseable "SC<digits>:" codes in the output means findings, not
failure; only a launch problem is an error.
*/
package shellcheck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/histlint/histlint/internal/core/domain/shell"
	"github.com/histlint/histlint/internal/core/ports"
)

// DefaultExcludes lists shellcheck codes that are noise when linting a
// history file rather than a script (sourcing, shebangs, cd-without-exit
// and the like).
var DefaultExcludes = []int{
	1089, 1090, 1091, 1117, 2103, 2148, 2154, 2164, 2224, 2230,
}

var (
	scCodeRE  = regexp.MustCompile(`SC(\d{4}):`)
	headingRE = regexp.MustCompile(`^In .* line .*:\n`)
)

// Analyzer implements ports.StaticAnalyzer on top of a CommandExecutor.
type Analyzer struct {
	executor ports.CommandExecutor
}

// NewAnalyzer creates an analyzer. It panics if executor is nil.
func NewAnalyzer(executor ports.CommandExecutor) ports.StaticAnalyzer {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &Analyzer{executor: executor}
}

// Installed implements the ports.StaticAnalyzer interface.
func (a *Analyzer) Installed() bool {
	_, _, err := a.executor.Run("shellcheck", "-V")
	return err == nil
}

/*
Analyze implements the ports.StaticAnalyzer interface. Shellcheck only
understands a few syntax modes; for shells it cannot check natively (zsh,
unknown shells), sh syntax is substituted and the substitution is reported
through note.
*/
func (a *Analyzer) Analyze(kind shell.Kind, excludeCodes []int, historyFilePath string, maxFindings int) ([]string, string, error) {
	mode, note := syntaxMode(kind)

	stdout, exitCode, err := a.executor.Run(
		"shellcheck",
		"--exclude="+joinCodes(excludeCodes),
		"--shell="+mode,
		historyFilePath,
	)
	if err != nil {
		return nil, note, err
	}
	if exitCode == 0 {
		return nil, note, nil
	}
	return extractFindings(stdout, maxFindings), note, nil
}

// syntaxMode maps the shell kind to a shellcheck --shell mode, substituting
// sh for unsupported shells.
func syntaxMode(kind shell.Kind) (mode, note string) {
	switch kind {
	case shell.Bash:
		return "bash", ""
	case shell.Sh:
		return "sh", ""
	}
	return "sh", fmt.Sprintf("shellcheck does not support %q; checking with sh syntax instead", kind)
}

/*
extractFindings splits shellcheck output into blank-line-separated blocks
and keeps each block that mentions at least one code not yet seen. At most
maxFindings new codes count per block. The "In ... line ...:" heading is
stripped; the caller renders the remainder.
*/
func extractFindings(output string, maxFindings int) []string {
	var findings []string
	seen := make(map[string]struct{})
	for _, block := range strings.Split(strings.TrimSpace(output), "\n\n") {
		var newCodes []string
		for _, match := range scCodeRE.FindAllStringSubmatch(block, -1) {
			code := match[1]
			if _, ok := seen[code]; ok {
				continue
			}
			newCodes = append(newCodes, code)
			if len(newCodes) == maxFindings {
				break
			}
		}
		if len(newCodes) == 0 {
			continue
		}
		for _, code := range newCodes {
			seen[code] = struct{}{}
		}
		findings = append(findings, headingRE.ReplaceAllString(strings.TrimSpace(block), ""))
	}
	return findings
}

func joinCodes(codes []int) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, strconv.Itoa(code))
	}
	return strings.Join(parts, ",")
}
