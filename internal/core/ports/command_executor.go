package ports

// CommandExecutor defines an interface for running external commands.
type CommandExecutor interface {
	// ExecuteInteractive runs command through an interactive instance of
	// the named shell ("shell -i -c command") and returns its output.
	// Interactive mode is required so aliases and shell options are loaded.
	ExecuteInteractive(shellName, command string) (stdout, stderr string, err error)

	// Run executes a program directly with the given arguments. A non-zero
	// exit status is reported through exitCode, not err; err is non-nil only
	// when the program could not be started at all.
	Run(name string, args ...string) (stdout string, exitCode int, err error)
}
