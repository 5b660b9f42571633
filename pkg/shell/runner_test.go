package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

const helperEnv = "SHELL_WANT_HELPER_PROCESS"

// helper returns a command that re-executes the test binary as TestHelperProcess.
func helper(args ...string) []string {
	return append([]string{os.Args[0], "-test.run=TestHelperProcess", "--"}, args...)
}

func helperOpts(opts Options) Options {
	env := map[string]string{helperEnv: "1"}
	for k, v := range opts.Env {
		env[k] = v
	}
	opts.Env = env
	return opts
}

// TestHelperProcess isn't a real test. It is the child process started by the other tests.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no helper command")
		os.Exit(2)
	}

	code := 0
	switch args[0] {
	case "echo":
		fmt.Println(strings.Join(args[1:], " "))
	case "fail":
		// fail <code> <stderr text>
		code, _ = strconv.Atoi(args[1])
		fmt.Fprintln(os.Stderr, strings.Join(args[2:], " "))
	case "both":
		fmt.Println("out 1")
		fmt.Fprintln(os.Stderr, "err 1")
		fmt.Println("out 2   ")
		fmt.Fprintln(os.Stderr, "err 2")
		fmt.Print("out 3")
	case "getenv":
		fmt.Println(os.Getenv(args[1]))
	case "gbk":
		// 你好 encoded as GBK
		os.Stdout.Write([]byte{0xc4, 0xe3, 0xba, 0xc3, '\n'})
	case "bom":
		os.Stdout.Write([]byte{0xef, 0xbb, 0xbf, 'h', 'i', '\r', '\n'})
	case "garbage":
		os.Stdout.Write([]byte{'o', 'k', '\n', 0xff, '\n'})
	case "garbage-then-sleep":
		os.Stdout.Write([]byte{0xff, '\n'})
		time.Sleep(time.Minute)
	case "garbage-while-writing":
		go func() {
			for {
				fmt.Fprintln(os.Stderr, "still working")
				time.Sleep(10 * time.Millisecond)
			}
		}()
		time.Sleep(50 * time.Millisecond)
		os.Stdout.Write([]byte{0xff, '\n'})
		time.Sleep(time.Minute)
	case "sleep":
		time.Sleep(time.Minute)
	default:
		fmt.Fprintf(os.Stderr, "unknown helper command %s\n", args[0])
		code = 2
	}

	os.Exit(code)
}

func TestRunEcho(t *testing.T) {
	for _, check := range []bool{false, true} {
		res, err := Run(context.Background(), helper("echo", "hello"), helperOpts(Options{Check: check}))
		if err != nil {
			t.Fatalf("check=%v: unexpected error: %v", check, err)
		}

		if !res.Success() || res.Stdout != "hello" || res.Stderr != "" {
			t.Errorf("check=%v: got (%v, %q, %q), want (true, \"hello\", \"\")", check, res.Success(), res.Stdout, res.Stderr)
		}

		if res.RunID == "" {
			t.Error("RunID is empty")
		}
	}
}

func TestRunNonZeroWithoutCheck(t *testing.T) {
	res, err := Run(context.Background(), helper("fail", "1", "err"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Success() || res.Stdout != "" || res.Stderr != "err" {
		t.Errorf("got (%v, %q, %q), want (false, \"\", \"err\")", res.Success(), res.Stdout, res.Stderr)
	}

	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
}

func TestRunNonZeroWithCheck(t *testing.T) {
	_, err := Run(context.Background(), helper("fail", "1", "err"), helperOpts(Options{Check: true}))
	if err == nil {
		t.Fatal("expected an error")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error = %T, want *CommandError", err)
	}

	if cmdErr.ExitCode != 1 || cmdErr.Stderr != "err" {
		t.Errorf("got exit code %d and stderr %q", cmdErr.ExitCode, cmdErr.Stderr)
	}

	msg := err.Error()
	if !strings.Contains(msg, "err") || !strings.Contains(msg, "1") {
		t.Errorf("error message %q should mention stderr and exit code", msg)
	}
}

func TestRunStartFailure(t *testing.T) {
	_, err := Run(context.Background(), []string{"nonexistent-binary-xyz-123"}, Options{})
	var startErr *StartError
	if !errors.As(err, &startErr) {
		t.Fatalf("error = %v, want *StartError", err)
	}

	if !strings.Contains(err.Error(), "nonexistent-binary-xyz-123") {
		t.Errorf("error %q should mention the binary", err)
	}
}

func TestRunEmptyCommand(t *testing.T) {
	if _, err := Run(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected an error for an empty command")
	}
}

func TestRunDecodesGBK(t *testing.T) {
	res, err := Run(context.Background(), helper("gbk"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stdout != "你好" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "你好")
	}
}

func TestRunStripsBOMAndCarriageReturn(t *testing.T) {
	res, err := Run(context.Background(), helper("bom"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stdout != "hi" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hi")
	}
}

func TestRunDecodeFailure(t *testing.T) {
	_, err := Run(context.Background(), helper("garbage"), helperOpts(Options{}))

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}

	if string(decErr.Raw) != "\xff\n" {
		t.Errorf("Raw = %q", decErr.Raw)
	}

	if strings.Join(decErr.Encodings, ",") != "utf-8-sig,utf-8,gbk,big5" {
		t.Errorf("Encodings = %v", decErr.Encodings)
	}
}

func TestRunDecodeFailureKillsRunningProcess(t *testing.T) {
	for _, name := range []string{"garbage-then-sleep", "garbage-while-writing"} {
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			res, err := Run(context.Background(), helper(name), helperOpts(Options{Stderr: func(string) {}}))

			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("error = %v, want *DecodeError", err)
			}
			if res != nil {
				t.Errorf("result = %+v, want nil", res)
			}

			if elapsed := time.Since(start); elapsed > 30*time.Second {
				t.Errorf("Run returned after %v, the process was not killed", elapsed)
			}
		})
	}
}

func TestRunEnvOverlay(t *testing.T) {
	opts := helperOpts(Options{Env: map[string]string{"SHELL_TEST_VALUE": "overlay"}})
	res, err := Run(context.Background(), helper("getenv", "SHELL_TEST_VALUE"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stdout != "overlay" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "overlay")
	}
}

func TestRunInheritsEnvironment(t *testing.T) {
	t.Setenv("SHELL_TEST_INHERITED", "parent")

	res, err := Run(context.Background(), helper("getenv", "SHELL_TEST_INHERITED"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Stdout != "parent" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "parent")
	}
}

func TestRunReportsEachLine(t *testing.T) {
	var outLines, errLines []string
	opts := helperOpts(Options{
		Stdout: func(text string) { outLines = append(outLines, text) },
		Stderr: func(text string) { errLines = append(errLines, text) },
	})

	res, err := Run(context.Background(), helper("both"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(outLines, "|"); got != "out 1|out 2|out 3" {
		t.Errorf("stdout lines = %q", got)
	}
	if got := strings.Join(errLines, "|"); got != "err 1|err 2" {
		t.Errorf("stderr lines = %q", got)
	}

	if res.Stdout != "out 1\nout 2\nout 3" {
		t.Errorf("Stdout = %q", res.Stdout)
	}
	if res.Stderr != "err 1\nerr 2" {
		t.Errorf("Stderr = %q", res.Stderr)
	}
}

func TestRunBuffered(t *testing.T) {
	var outBlocks, errBlocks []string
	opts := helperOpts(Options{
		Buffered: true,
		Stdout:   func(text string) { outBlocks = append(outBlocks, text) },
		Stderr:   func(text string) { errBlocks = append(errBlocks, text) },
	})

	if _, err := Run(context.Background(), helper("both"), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(outBlocks) != 1 || outBlocks[0] != "out 1\nout 2\nout 3" {
		t.Errorf("stdout blocks = %q", outBlocks)
	}
	if len(errBlocks) != 1 || errBlocks[0] != "err 1\nerr 2" {
		t.Errorf("stderr blocks = %q", errBlocks)
	}
}

func TestRunBufferedSkipsEmptyStreams(t *testing.T) {
	calls := 0
	opts := helperOpts(Options{
		Buffered: true,
		Stdout:   func(string) {},
		Stderr:   func(string) { calls++ },
	})

	if _, err := Run(context.Background(), helper("echo", "quiet"), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 0 {
		t.Errorf("stderr reported %d times for an empty stream", calls)
	}
}

func TestRunIsStable(t *testing.T) {
	first, err := Run(context.Background(), helper("both"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Run(context.Background(), helper("both"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Stdout != second.Stdout || first.Stderr != second.Stderr {
		t.Errorf("captured output differs between runs: %q/%q vs %q/%q", first.Stdout, first.Stderr, second.Stdout, second.Stderr)
	}
}

func TestRunContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Run(ctx, helper("sleep"), helperOpts(Options{}))
	if err == nil || !strings.Contains(err.Error(), "interrupted") {
		t.Fatalf("error = %v, want an interrupted command", err)
	}

	if elapsed := time.Since(start); elapsed > 30*time.Second {
		t.Errorf("Run returned after %v", elapsed)
	}
}

// lateCancelContext reports a cancellation without ever closing Done, as if ctx was cancelled
// after the process already exited.
type lateCancelContext struct{ context.Context }

func (lateCancelContext) Err() error { return context.Canceled }

func TestRunCancelledAfterExit(t *testing.T) {
	res, err := Run(lateCancelContext{context.Background()}, helper("echo", "done"), helperOpts(Options{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Success() || res.Stdout != "done" {
		t.Errorf("got (%v, %q), want (true, \"done\")", res.Success(), res.Stdout)
	}
}
