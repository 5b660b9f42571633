package shell

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Split turns a command string into tokens by splitting on whitespace. Quotes are not interpreted,
// so arguments containing spaces have to be passed as a pre-split slice instead.
func Split(command string) []string {
	return strings.Fields(command)
}

// Quote renders argv as a single shell-quoted line for log output.
func Quote(argv []string) string {
	parts := make([]string, len(argv))
	for idx, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = strconv.Quote(arg)
		}
		parts[idx] = quoted
	}

	return strings.Join(parts, " ")
}
