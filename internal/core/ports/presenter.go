package ports

import "github.com/histlint/histlint/internal/core/domain/command"

// EnvNameWidth is the padded width of variable names in EnvVar lines.
// Values start three characters later, after the "=> " marker, so caret
// markers that should point at a value use EnvValueColumn.
const (
	EnvNameWidth   = 20
	EnvValueColumn = EnvNameWidth + 3
)

/*
Presenter defines the contract for rendering the report. Rules emit their
own suggestion lines through it, each with a caret offset pointing at a
character of the command line printed above. This is a driven port,
implemented by the terminal UI.
*/
type Presenter interface {
	// Info, Tip and Warn render one suggestion line on the corresponding
	// severity channel, with a "^--" marker indented by caretOffset.
	Info(text string, caretOffset int)
	Tip(text string, caretOffset int)
	Warn(text string, caretOffset int)

	// ShowCommand prints a raw command a rule is about to comment on.
	ShowCommand(cmd string)

	// Header prints a section header, optionally preceded by a blank line.
	Header(title string, leadingNewline bool)

	// EnvVar prints one environment-variable line; value is already
	// formatted by the caller (quoted, UNSET, etc.).
	EnvVar(name, value string)

	// CommandStats prints one frequency line for a command: the command,
	// its share of the corpus and its count/total.
	CommandStats(cmd string, count, total int)

	// FrequencyTable renders bare-command frequencies as a table.
	FrequencyTable(rows []command.Frequency, total int)

	// AnalysisFinding prints one static-analysis finding block, coloring
	// embedded caret lines on the tip channel.
	AnalysisFinding(block string)

	// Plain prints an uncolored line.
	Plain(text string)
}
