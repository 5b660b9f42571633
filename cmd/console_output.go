package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// debugEnv dumps every event field and error stack traces when set.
const debugEnv = "VOXIUM_TOOL_DEBUG"

// ConsoleWriter renders zerolog JSON events as coloured messages.
type ConsoleWriter struct {
	Out io.Writer

	colors colorstring.Colorize
	buffer strings.Builder
	lock   sync.Mutex
}

// NewConsoleWriter returns a ConsoleWriter for out. Colours are disabled if out is not a terminal.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	disable := true
	if f, ok := out.(*os.File); ok {
		disable = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return &ConsoleWriter{
		Out: out,
		colors: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: disable,
		},
	}
}

func (w *ConsoleWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	err = d.Decode(&evt)
	if err != nil {
		return n, eris.Wrapf(err, "cannot decode event: %s", p)
	}

	w.buffer.Reset()
	switch evt["level"] {
	case "fatal", "error":
		w.buffer.WriteString(w.colors.Color("[red]"))
	case "warn":
		w.buffer.WriteString(w.colors.Color("[yellow]"))
	case "debug", "trace":
		w.buffer.WriteString(w.colors.Color("[blue]"))
	default:
		w.buffer.WriteString(w.colors.Color("[green]"))
	}

	if evt["level"] == "error" {
		w.buffer.WriteString("Error: ")
	}

	msg, _ := evt["message"].(string)

	if path, ok := evt["path"].(string); ok {
		// simplify the path
		relPath, err := filepath.Rel(".", path)
		if err == nil && !strings.HasPrefix(relPath, "..") {
			msg = strings.ReplaceAll(msg, path, relPath)
		}
	}

	w.buffer.WriteString(msg)

	if errorDetails, ok := evt["error"]; ok {
		w.buffer.WriteString("\n")
		w.buffer.WriteString(fmt.Sprint(errorDetails))
	}

	if os.Getenv(debugEnv) != "" {
		names := make([]string, 0, len(evt))
		for name := range evt {
			names = append(names, name)
		}
		sort.Strings(names)

		w.buffer.WriteString("\n")
		for _, name := range names {
			w.buffer.WriteString(fmt.Sprintf("  %s: %+v\n", name, evt[name]))
		}
	}

	w.buffer.WriteString(w.colors.Color("[reset]"))
	w.buffer.WriteString("\n")
	if _, err := io.WriteString(w.Out, w.buffer.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}

func init() {
	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		return eris.ToString(err, os.Getenv(debugEnv) != "")
	}
}
