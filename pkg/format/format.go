// Package format runs clang-format over C and C++ sources.
package format

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
)

// DefaultStyle makes clang-format pick up the nearest .clang-format file.
const DefaultStyle = "file"

// Extensions lists the file types that are formatted.
var Extensions = []string{".cpp", ".h", ".c", ".hpp", ".cc"}

// LookupFunc resolves the clang-format binary.
type LookupFunc func(ctx context.Context, name string) (string, error)

// Formatter formats files with the clang-format found through Lookup.
type Formatter struct {
	Exec   shell.Executor
	Lookup LookupFunc
}

// Stats counts the outcome of a Format call.
type Stats struct {
	Formatted int
	Failed    int
}

func isSource(name string) bool {
	ext := filepath.Ext(name)
	for _, item := range Extensions {
		if ext == item {
			return true
		}
	}
	return false
}

// CollectFiles returns path itself if it is a file, otherwise the sorted source files inside it.
func CollectFiles(path string, recursive bool) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, eris.Wrapf(err, "Path not found: %s", path)
	}

	if info.Mode().IsRegular() {
		return []string{path}, nil
	}
	if !info.IsDir() {
		return nil, eris.Errorf("Invalid path: %s", path)
	}

	files := []string{}
	if recursive {
		err = filepath.WalkDir(path, func(item string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && isSource(d.Name()) {
				files = append(files, item)
			}
			return nil
		})
		if err != nil {
			return nil, eris.Wrapf(err, "Failed to walk %s", path)
		}
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, eris.Wrapf(err, "Failed to list %s", path)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && isSource(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Format runs clang-format in place on path (a file or a directory). Failures for single files are
// logged and counted without stopping the run.
func (f *Formatter) Format(ctx context.Context, path, style string, recursive bool) (Stats, error) {
	log := logging.Log(ctx)
	stats := Stats{}

	if style == "" {
		style = DefaultStyle
	}

	files, err := CollectFiles(filepath.Clean(path), recursive)
	if err != nil {
		return stats, err
	}

	clangFormat, err := f.Lookup(ctx, "clang-format")
	if err != nil {
		return stats, eris.Wrap(err, "clang-format was not found")
	}

	bar := newProgressBar(len(files), "Formatting")
	defer bar.Finish()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, eris.Wrap(err, "formatting was interrupted")
		}

		log.Info().Msgf("Formatting: %s", file)
		_, err := f.Exec.Run(ctx, []string{clangFormat, "-i", file, "--style=" + style}, shell.Options{Check: true})
		if err != nil {
			log.Error().Err(err).Msgf("Failed to format %s", file)
			stats.Failed++
		} else {
			stats.Formatted++
		}

		_ = bar.Add(1)
	}

	if stats.Failed > 0 {
		log.Warn().Msgf("%d of %d files failed to format: %s", stats.Failed, len(files), path)
	}

	return stats, nil
}
