package conan

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// UpdateProfile sets key to value inside section of the conan profile at path. Missing keys are
// added at the end of their section and missing sections are appended to the file. An empty value
// writes the bare key.
func UpdateProfile(path, section, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "Profile not found at %s", path)
	}

	entry := key
	if value != "" {
		entry += "=" + value
	}
	entry += "\n"

	header := "[" + section + "]"
	lines := strings.SplitAfter(string(data), "\n")

	var out strings.Builder
	inSection := false
	updated := false

	for _, line := range lines {
		if line == "" {
			continue
		}

		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, header) {
			inSection = true
			out.WriteString(line)
			continue
		}

		if inSection && (stripped == "" || strings.HasPrefix(stripped, "[")) {
			if !updated {
				out.WriteString(entry)
				updated = true
			}
			inSection = false
		}

		if inSection && (strings.HasPrefix(stripped, key+"=") || stripped == key) {
			out.WriteString(entry)
			updated = true
		} else {
			out.WriteString(line)
		}
	}

	if !updated {
		content := out.String()
		if content != "" && !strings.HasSuffix(content, "\n") {
			out.WriteString("\n")
		}
		if !inSection {
			out.WriteString("\n" + header + "\n")
		}
		out.WriteString(entry)
	}

	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return eris.Wrapf(err, "Failed to write %s", path)
	}

	return nil
}
