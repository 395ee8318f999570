package shellconfig

import (
	"bufio"
	"strings"
)

/*
parseAliasOutput parses the output of the shell's "alias" builtin into a
name -> command map. Bash prints "alias name='command'" lines; zsh prints
"name=command". Lines that do not look like either are skipped.
*/
func parseAliasOutput(output string) map[string]string {
	aliases := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		name, command, ok := parseAliasLine(scanner.Text())
		if ok {
			aliases[name] = command
		}
	}
	return aliases
}

func parseAliasLine(line string) (name string, command string, isAlias bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	trimmed = strings.TrimPrefix(trimmed, "alias ")

	parts := strings.SplitN(trimmed, "=", 2)
	if len(parts) < 2 || parts[0] == "" || strings.ContainsAny(parts[0], " \t") {
		return "", "", false
	}

	name = parts[0]
	command = unquote(strings.TrimSpace(parts[1]))
	return name, command, true
}

// unquote strips one level of matching single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
		return value[1 : len(value)-1]
	}
	return value
}
