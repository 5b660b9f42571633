package shell

import (
	"runtime"
	"strings"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	base := []string{"A=1", "B=2", "C=3"}
	got := MergeEnv(base, map[string]string{"B": "two", "D": "4"})

	want := "A=1,C=3,B=two,D=4"
	if strings.Join(got, ",") != want {
		t.Errorf("MergeEnv() = %v, want %s", got, want)
	}

	if strings.Join(base, ",") != "A=1,B=2,C=3" {
		t.Errorf("base was modified: %v", base)
	}
}

func TestMergeEnvWithoutOverlay(t *testing.T) {
	base := []string{"A=1"}
	if got := MergeEnv(base, nil); len(got) != 1 || got[0] != "A=1" {
		t.Errorf("MergeEnv() = %v", got)
	}
}

func TestMergeEnvCaseOnWindows(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("only relevant on windows")
	}

	got := MergeEnv([]string{"Path=C:\\old"}, map[string]string{"PATH": "C:\\new"})
	if len(got) != 1 || got[0] != "PATH=C:\\new" {
		t.Errorf("MergeEnv() = %v", got)
	}
}

func TestSplitAndQuote(t *testing.T) {
	argv := Split("  conan   install . --build=missing ")
	if strings.Join(argv, "|") != "conan|install|.|--build=missing" {
		t.Errorf("Split() = %q", argv)
	}

	quoted := Quote([]string{"echo", "hello world"})
	if !strings.HasPrefix(quoted, "echo ") || !strings.Contains(quoted, "'hello world'") {
		t.Errorf("Quote() = %q", quoted)
	}
}
