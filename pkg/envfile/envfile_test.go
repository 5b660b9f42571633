package envfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	lookup := func(ctx context.Context, name string) (string, error) {
		if name == "clang-tidy" {
			return "", eris.New("not installed")
		}
		return "/venv/bin/" + name, nil
	}

	path, err := Generate(context.Background(), root, lookup)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if want := filepath.Join(root, ".vscode", ".env"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "CLANG_FORMAT_PATH=/venv/bin/clang-format\n" +
		"CMAKE_PATH=/venv/bin/cmake\n" +
		"CONAN_PATH=/venv/bin/conan\n"
	if string(data) != want {
		t.Errorf("got:\n%s\nwant:\n%s", data, want)
	}
}

func TestVarName(t *testing.T) {
	if got := VarName("clang-format"); got != "CLANG_FORMAT_PATH" {
		t.Errorf("VarName = %q", got)
	}
}
