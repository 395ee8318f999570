package rules

import (
	"regexp"
	"strconv"

	"github.com/histlint/histlint/internal/core/ports"
)

var digitsOnlyRE = regexp.MustCompile(`^\d+$`)

/*
Sanitize returns the integer value of the named environment variable, or -1
when the variable is unset or not a plain unsigned integer. The -1 sentinel
means "unbounded", not zero: it must never trigger a lower-bound tip.
*/
func Sanitize(env ports.EnvironmentReader, name string) int {
	value, ok := env.Lookup(name)
	if !ok || !digitsOnlyRE.MatchString(value) {
		return -1
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return n
}
