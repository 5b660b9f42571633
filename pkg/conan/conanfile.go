package conan

import (
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// UpdateConanfileAttribute replaces the value of attribute in the recipe at path with value,
// rendered as a python string literal. The result is written to output, or back to path if output
// is empty. It returns the previous value and whether the attribute was found. Nothing is written
// for a missing attribute.
func UpdateConanfileAttribute(path, attribute, value, output string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, eris.Wrapf(err, "Conanfile not found at %s", path)
	}

	pattern := regexp.MustCompile(`(?m)^([ \t]*)` + regexp.QuoteMeta(attribute) + `[ \t]*=[ \t]*(.+)`)
	if !pattern.Match(data) {
		return "", false, nil
	}

	oldValue := ""
	literal := pyString(value)
	content := pattern.ReplaceAllStringFunc(string(data), func(match string) string {
		groups := pattern.FindStringSubmatch(match)
		oldValue = strings.TrimSpace(groups[2])
		return groups[1] + attribute + " = " + literal
	})

	if output == "" {
		output = path
	}

	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return "", false, eris.Wrapf(err, "Failed to write %s", output)
	}

	return oldValue, true, nil
}

// pyString quotes s the way python's repr() does for plain strings.
func pyString(s string) string {
	quote := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = `"`
	}

	var b strings.Builder
	b.WriteString(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case string(r) == quote:
			b.WriteString(`\` + quote)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(quote)

	return b.String()
}
