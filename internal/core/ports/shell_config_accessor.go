package ports

/*
ShellConfigAccessor defines the interface for reading live configuration
from the user's shell. This is a driven port, typically implemented by a
repository adapter that shells out to an interactive shell instance.
*/
type ShellConfigAccessor interface {
	/*
	   ExistingAliases retrieves the aliases currently defined in the user's
	   interactive shell. It returns a map where the key is the alias name
	   and the value is the command it expands to.
	*/
	ExistingAliases() (map[string]string, error)

	/*
	   OptionSettings returns the shell's option listing ("shopt" output for
	   bash-family shells, "setopt" output for zsh).
	*/
	OptionSettings() (string, error)
}
