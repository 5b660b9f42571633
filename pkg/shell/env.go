package shell

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// MergeEnv returns base with the overlay applied. Entries from the overlay replace entries in base
// with the same name, the remaining base entries keep their order.
func MergeEnv(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	overridden := make(map[string]bool, len(overlay))
	for name := range overlay {
		overridden[envKey(name)] = true
	}

	result := make([]string, 0, len(base)+len(overlay))
	for _, item := range base {
		name := item
		if pos := strings.Index(item, "="); pos > -1 {
			name = item[:pos]
		}

		// skip overriden entries to avoid conflicts
		if !overridden[envKey(name)] {
			result = append(result, item)
		}
	}

	names := make([]string, 0, len(overlay))
	for name := range overlay {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result = append(result, fmt.Sprintf("%s=%s", name, overlay[name]))
	}

	return result
}

func envKey(name string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(name)
	}
	return name
}
