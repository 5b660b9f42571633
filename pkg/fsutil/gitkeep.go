package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// IgnoredFolders are never descended into when creating .gitkeep files
var IgnoredFolders = []string{"build", "bin", "dist", ".git", ".venv", ".vscode"}

func isIgnored(name string) bool {
	for _, item := range IgnoredFolders {
		if name == item {
			return true
		}
	}
	return false
}

func inIgnoredFolder(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if isIgnored(part) {
			return true
		}
	}
	return false
}

// CreateGitKeep places an empty .gitkeep file in every empty directory below root and returns the
// created files.
func CreateGitKeep(root string) ([]string, error) {
	created := []string{}
	if inIgnoredFolder(root) {
		return created, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() || path == root {
			return nil
		}

		if isIgnored(d.Name()) {
			return filepath.SkipDir
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return eris.Wrapf(err, "Failed to list %s", path)
		}

		if len(entries) == 0 {
			keep := filepath.Join(path, ".gitkeep")
			if err := os.WriteFile(keep, nil, 0o644); err != nil {
				return eris.Wrapf(err, "Failed to create %s", keep)
			}
			created = append(created, keep)
		}

		return nil
	})
	if err != nil {
		return created, err
	}

	return created, nil
}
