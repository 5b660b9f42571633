package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(NewConsoleWriter(&buf))

	log.Info().Str("run", "abc").Msg("executing shell command: echo [hi]")
	log.Error().Msg("broken")

	out := buf.String()
	if !strings.Contains(out, "executing shell command: echo [hi]\n") {
		t.Errorf("info line missing: %q", out)
	}
	if !strings.Contains(out, "Error: broken\n") {
		t.Errorf("error line missing: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colours were written to a buffer: %q", out)
	}
}

func TestConfirmPrompt(t *testing.T) {
	var out bytes.Buffer
	confirm := confirmPrompt(strings.NewReader("y\nn\n Y \n"), &out, false)

	got := []bool{confirm("first?"), confirm("second?"), confirm("third?"), confirm("eof?")}
	want := []bool{true, false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer %d = %v, want %v", i, got[i], want[i])
		}
	}

	if !strings.Contains(out.String(), "first? (y/n): ") {
		t.Errorf("question was not printed: %q", out.String())
	}

	if !confirmPrompt(strings.NewReader(""), &out, true)("delete?") {
		t.Error("assumeYes did not answer yes")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetOut(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestTreeCommand(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Engine", "Source"), 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", root, "--depth", "0")
	if err != nil {
		t.Fatalf("tree failed: %v", err)
	}
	if out != "Engine\n" {
		t.Errorf("output = %q", out)
	}
}

func TestConfigCommands(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "Tools", "Config", "ProjectConfig.json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"project_name": "Voxium", "conan": {"user_home": {"linux": "/opt/conan/{project_name}"}}}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(filepath.Join(root, "Tools")); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	out, err := execute(t, "config", "get", "conan.user_home.linux")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if out != "/opt/conan/{project_name}\n" {
		t.Errorf("config get = %q", out)
	}

	out, err = execute(t, "config", "get", "missing.key", "--default", "fallback")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if out != "fallback\n" {
		t.Errorf("config get with default = %q", out)
	}

	out, err = execute(t, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(out, "PROJECT_NAME     : Voxium") {
		t.Errorf("info output = %q", out)
	}
}

func TestRunCommandExitCode(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}

	for _, args := range [][]string{
		{"run", "--", "/bin/sh", "-c", "exit 3"},
		{"run", "--check", "--", "/bin/sh", "-c", "exit 3"},
	} {
		_, err := execute(t, args...)

		exitErr, ok := err.(exitCodeError)
		if !ok || exitErr.code != 3 {
			t.Errorf("%v: error = %v, want exit code 3", args, err)
		}
	}
}
