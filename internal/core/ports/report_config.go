package ports

// ReportConfig parametrizes the length and content of the report.
type ReportConfig struct {
	// TopCommands is the number of bare command names listed in the
	// frequency table.
	TopCommands int `yaml:"topCommands"`

	// TopWithArguments is the number of favorite commands (with arguments)
	// listed and fed to frequency-gated rules.
	TopWithArguments int `yaml:"topWithArguments"`

	// ShellcheckLimit caps the distinct new shellcheck codes surfaced per
	// finding block.
	ShellcheckLimit int `yaml:"shellcheckLimit"`

	// ShellcheckExclude lists additional shellcheck codes to suppress, on
	// top of the built-in exclusions.
	ShellcheckExclude []int `yaml:"shellcheckExclude"`
}

// ReportConfigProvider loads the report configuration.
type ReportConfigProvider interface {
	// Load returns the effective configuration. A missing configuration
	// file is not an error; defaults are returned instead.
	Load() (ReportConfig, error)
}
