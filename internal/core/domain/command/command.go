/*
Package command defines the normalized history corpus the lint rules run
against. A corpus is built once from raw history lines and consumed
read-only by every rule.
*/
package command

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/histlint/histlint/internal/core/domain/shell"
)

// zsh extended-history prefix, e.g. ": 1700000000:0;ls -la".
var zshTimestampRE = regexp.MustCompile(`^: \d+:\d+;`)

// Frequency represents a command and how often it occurs in the corpus.
type Frequency struct {
	Command string
	Count   int
}

// Corpus is the ordered sequence of normalized history commands under
// analysis. Insertion order is history order; window rules rely on it.
type Corpus struct {
	commands []string
}

/*
NewCorpus normalizes raw history lines into a Corpus.

Each line has internal whitespace runs collapsed to single spaces and its
ends trimmed. For zsh, a leading extended-history timestamp token is
stripped once. Lines that are empty or start with '#' after normalization
are dropped. Bytes that are not valid UTF-8 are replaced with U+FFFD rather
than failing.
*/
func NewCorpus(rawLines []string, kind shell.Kind) Corpus {
	commands := make([]string, 0, len(rawLines))
	for _, raw := range rawLines {
		cmd, ok := Normalize(raw, kind)
		if !ok {
			continue
		}
		commands = append(commands, cmd)
	}
	return Corpus{commands: commands}
}

// Normalize converts one raw history line into a normalized command. The
// second return value is false when the line should be dropped.
func Normalize(raw string, kind shell.Kind) (string, bool) {
	line := strings.ToValidUTF8(raw, string(utf8.RuneError))
	line = strings.TrimSpace(line)
	if kind == shell.Zsh {
		if loc := zshTimestampRE.FindStringIndex(line); loc != nil {
			line = line[loc[1]:]
		}
	}
	line = strings.Join(strings.Fields(line), " ")
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}

// Commands returns the commands in history order. The slice must not be
// mutated by callers.
func (c Corpus) Commands() []string {
	return c.commands
}

// Len returns the number of commands in the corpus.
func (c Corpus) Len() int {
	return len(c.commands)
}

// Distinct returns the distinct commands in first-occurrence order.
func (c Corpus) Distinct() []string {
	seen := make(map[string]struct{}, len(c.commands))
	distinct := make([]string, 0, len(c.commands))
	for _, cmd := range c.commands {
		if _, ok := seen[cmd]; ok {
			continue
		}
		seen[cmd] = struct{}{}
		distinct = append(distinct, cmd)
	}
	return distinct
}

// Frequencies returns each distinct command with its occurrence count, in
// first-occurrence order.
func (c Corpus) Frequencies() []Frequency {
	counts := make(map[string]int, len(c.commands))
	for _, cmd := range c.commands {
		counts[cmd]++
	}
	distinct := c.Distinct()
	frequencies := make([]Frequency, 0, len(distinct))
	for _, cmd := range distinct {
		frequencies = append(frequencies, Frequency{Command: cmd, Count: counts[cmd]})
	}
	return frequencies
}

// Favorites returns the top-k most frequent distinct commands in descending
// count order. Ties keep first-occurrence order (stable sort by count).
func (c Corpus) Favorites(k int) []Frequency {
	return topByCount(c.Frequencies(), k)
}

// PrefixFrequencies returns the occurrence counts of bare command names
// (argv[0]) over the commands that carry at least one argument, in
// first-occurrence order.
func (c Corpus) PrefixFrequencies() []Frequency {
	counts := make(map[string]int)
	var order []string
	for _, cmd := range c.commands {
		if !strings.Contains(cmd, " ") {
			continue
		}
		prefix := strings.Fields(cmd)[0]
		if counts[prefix] == 0 {
			order = append(order, prefix)
		}
		counts[prefix]++
	}
	frequencies := make([]Frequency, 0, len(order))
	for _, prefix := range order {
		frequencies = append(frequencies, Frequency{Command: prefix, Count: counts[prefix]})
	}
	return frequencies
}

// TopPrefixes returns the top-k bare command names by count, descending,
// ties in first-occurrence order.
func (c Corpus) TopPrefixes(k int) []Frequency {
	return topByCount(c.PrefixFrequencies(), k)
}

// topByCount sorts by count descending, keeping the incoming order for equal
// counts, and truncates to k entries.
func topByCount(frequencies []Frequency, k int) []Frequency {
	for i := 1; i < len(frequencies); i++ {
		for j := i; j > 0 && frequencies[j].Count > frequencies[j-1].Count; j-- {
			frequencies[j], frequencies[j-1] = frequencies[j-1], frequencies[j]
		}
	}
	if k >= 0 && k < len(frequencies) {
		frequencies = frequencies[:k]
	}
	return frequencies
}

// AverageLength returns the mean command length in characters, truncated.
func (c Corpus) AverageLength() int {
	if len(c.commands) == 0 {
		return 0
	}
	total := 0
	for _, cmd := range c.commands {
		total += len(cmd)
	}
	return total / len(c.commands)
}

// AverageArgs returns the mean number of arguments per command, truncated.
func (c Corpus) AverageArgs() int {
	if len(c.commands) == 0 {
		return 0
	}
	total := 0
	for _, cmd := range c.commands {
		total += len(strings.Fields(cmd)) - 1
	}
	return total / len(c.commands)
}
