package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "Engine", "Source", "Runtime")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "Tools", "Config"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Tools", "Config", "ProjectConfig.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot failed: %v", err)
	}
	if got != root {
		t.Errorf("got %q, want %q", got, root)
	}
}

func TestPrintTask(t *testing.T) {
	var buf bytes.Buffer
	Output = &buf
	defer func() { Output = os.Stdout }()

	PrintTask("Building")
	PrintSubtask("conan build")
	PrintError("failed")

	out := buf.String()
	for _, want := range []string{"==>", "Building", "->", "conan build", "failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q: %q", want, out)
		}
	}
}
