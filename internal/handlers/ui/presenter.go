/*
Package ui renders the report to a terminal. Colors come from fatih/color,
which honors NO_COLOR and non-TTY output by itself.
*/
package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/histlint/histlint/internal/core/domain/command"
	"github.com/histlint/histlint/internal/core/ports"
)

const (
	headerWidth  = 79
	commandWidth = 39
	statsWidth   = 20
)

// Caret lines inside shellcheck finding blocks, e.g. "  ^-- SC2046: ...".
var findingCaretRE = regexp.MustCompile(`(\^-- .*)`)

// ConsolePresenter implements the ports.Presenter interface for terminal
// output.
type ConsolePresenter struct {
	out io.Writer
}

// NewConsolePresenter creates a presenter writing to out.
func NewConsolePresenter(out io.Writer) ports.Presenter {
	if out == nil {
		panic("output writer cannot be nil")
	}
	return &ConsolePresenter{out: out}
}

// Info implements the ports.Presenter interface.
func (p *ConsolePresenter) Info(text string, caretOffset int) {
	fmt.Fprintln(p.out, InfoColor(caret(caretOffset)+text))
}

// Tip implements the ports.Presenter interface.
func (p *ConsolePresenter) Tip(text string, caretOffset int) {
	fmt.Fprintln(p.out, TipColor(caret(caretOffset)+text))
}

// Warn implements the ports.Presenter interface.
func (p *ConsolePresenter) Warn(text string, caretOffset int) {
	fmt.Fprintln(p.out, WarnColor(caret(caretOffset)+text))
}

// ShowCommand implements the ports.Presenter interface.
func (p *ConsolePresenter) ShowCommand(cmd string) {
	fmt.Fprintln(p.out, cmd)
}

// Header implements the ports.Presenter interface.
func (p *ConsolePresenter) Header(title string, leadingNewline bool) {
	if leadingNewline {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, HeaderColor(center(title, headerWidth)))
}

// EnvVar implements the ports.Presenter interface.
func (p *ConsolePresenter) EnvVar(name, value string) {
	fmt.Fprintf(p.out, "%-*s=> %s\n", ports.EnvNameWidth, name, value)
}

// CommandStats implements the ports.Presenter interface. The columns are
// padded before coloring so ANSI escapes do not skew the alignment.
func (p *ConsolePresenter) CommandStats(cmd string, count, total int) {
	percent := fmt.Sprintf("%*s", statsWidth, fmt.Sprintf("%.1f%%", 100*float64(count)/float64(total)))
	times := fmt.Sprintf("%*s", statsWidth, fmt.Sprintf("%d/%d", count, total))
	fmt.Fprintf(p.out, "%-*s%s%s\n", commandWidth, cmd, DetailColor(percent), DetailColor(times))
}

// FrequencyTable implements the ports.Presenter interface.
func (p *ConsolePresenter) FrequencyTable(rows []command.Frequency, total int) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Command", "Share", "Count"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, row := range rows {
		table.Append([]string{
			row.Command,
			fmt.Sprintf("%.1f%%", 100*float64(row.Count)/float64(total)),
			fmt.Sprintf("%d/%d", row.Count, total),
		})
	}
	table.Render()
}

// AnalysisFinding implements the ports.Presenter interface. Embedded caret
// lines are rendered on the tip channel.
func (p *ConsolePresenter) AnalysisFinding(block string) {
	fmt.Fprintln(p.out, findingCaretRE.ReplaceAllStringFunc(block, func(line string) string {
		return TipColor(line)
	}))
}

// Plain implements the ports.Presenter interface.
func (p *ConsolePresenter) Plain(text string) {
	fmt.Fprintln(p.out, text)
}

func caret(offset int) string {
	return strings.Repeat(" ", offset) + "^-- "
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
