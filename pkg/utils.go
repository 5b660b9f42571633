package pkg

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

// RootMarkers identify the project root. The config file wins over .git so that nested checkouts
// resolve to the engine project.
var RootMarkers = []string{filepath.FromSlash("Tools/Config/ProjectConfig.json"), ".git"}

// Output receives the task banners.
var Output io.Writer = os.Stdout

// FindProjectRoot walks up from start until it finds a directory containing one of RootMarkers.
func FindProjectRoot(start string) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to resolve %s", start)
	}

	for _, marker := range RootMarkers {
		mypath := start
		for {
			_, err := os.Stat(filepath.Join(mypath, marker))
			if err == nil {
				return mypath, nil
			}

			if !eris.Is(err, os.ErrNotExist) {
				return "", eris.Wrap(err, "Error ocurred while searching for project root")
			}

			nextPath := filepath.Dir(mypath)
			if mypath == nextPath {
				break
			}
			mypath = nextPath
		}
	}

	return "", eris.Errorf("Project root not found above %s", start)
}

func PrintTask(msg string) {
	colorstring.Fprintf(Output, "[blue][bold]==>[default] %s\n", msg)
}

func PrintSubtask(msg string) {
	colorstring.Fprintf(Output, "[green][bold]  ->[reset] %s\n", msg)
}

func PrintError(msg string) {
	colorstring.Fprintf(Output, "[red][bold]  ->[reset] %s\n", msg)
}
