package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const treeIndent = "    "

// PrintTree writes the entries below path to w, descending at most depth levels into
// subdirectories. A negative depth prints nothing.
func PrintTree(w io.Writer, path string, depth int) error {
	return printTree(w, path, depth, "")
}

func printTree(w io.Writer, path string, depth int, indent string) error {
	if depth < 0 {
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		switch {
		case os.IsPermission(err):
			_, err = fmt.Fprintf(w, "%s[Permission Denied: %s]\n", indent, path)
		case os.IsNotExist(err):
			_, err = fmt.Fprintf(w, "%s[Path Not Found: %s]\n", indent, path)
		}
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, entry.Name()); err != nil {
			return err
		}

		if entry.IsDir() {
			err = printTree(w, filepath.Join(path, entry.Name()), depth-1, indent+treeIndent)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
