package testutil

import (
	"fmt"

	"github.com/histlint/histlint/internal/core/domain/command"
	"github.com/histlint/histlint/internal/core/domain/suggestion"
	"github.com/histlint/histlint/internal/core/ports"
)

/*
RecordingPresenter captures everything a rule or report emits, so tests can
assert on suggestion text, severity and caret offsets without parsing
colored terminal output.
*/
type RecordingPresenter struct {
	Suggestions []suggestion.Suggestion
	Commands    []string
	Headers     []string
	Lines       []string
}

func (p *RecordingPresenter) Info(text string, caretOffset int) {
	p.record(suggestion.Info, text, caretOffset)
}

func (p *RecordingPresenter) Tip(text string, caretOffset int) {
	p.record(suggestion.Tip, text, caretOffset)
}

func (p *RecordingPresenter) Warn(text string, caretOffset int) {
	p.record(suggestion.Warn, text, caretOffset)
}

func (p *RecordingPresenter) record(sev suggestion.Severity, text string, caretOffset int) {
	p.Suggestions = append(p.Suggestions, suggestion.Suggestion{
		Severity:    sev,
		Text:        text,
		CaretOffset: caretOffset,
	})
}

func (p *RecordingPresenter) ShowCommand(cmd string) {
	p.Commands = append(p.Commands, cmd)
}

func (p *RecordingPresenter) Header(title string, leadingNewline bool) {
	p.Headers = append(p.Headers, title)
}

func (p *RecordingPresenter) EnvVar(name, value string) {
	p.Lines = append(p.Lines, name+"=> "+value)
}

func (p *RecordingPresenter) CommandStats(cmd string, count, total int) {
	p.Lines = append(p.Lines, fmt.Sprintf("%s %d/%d", cmd, count, total))
}

func (p *RecordingPresenter) FrequencyTable(rows []command.Frequency, total int) {
	for _, row := range rows {
		p.Lines = append(p.Lines, fmt.Sprintf("%s %d/%d", row.Command, row.Count, total))
	}
}

func (p *RecordingPresenter) AnalysisFinding(block string) {
	p.Lines = append(p.Lines, block)
}

func (p *RecordingPresenter) Plain(text string) {
	p.Lines = append(p.Lines, text)
}

// SuggestionTexts returns the recorded suggestion texts in emission order.
func (p *RecordingPresenter) SuggestionTexts() []string {
	texts := make([]string, 0, len(p.Suggestions))
	for _, s := range p.Suggestions {
		texts = append(texts, s.Text)
	}
	return texts
}

// Reset clears everything recorded so far.
func (p *RecordingPresenter) Reset() {
	p.Suggestions = nil
	p.Commands = nil
	p.Headers = nil
	p.Lines = nil
}

// Ensure RecordingPresenter implements the ports.Presenter interface.
var _ ports.Presenter = (*RecordingPresenter)(nil)
