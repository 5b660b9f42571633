package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode"

	"github.com/aidarkhanov/nanoid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/voxium/voxium/tools/pkg/logging"
)

// LineFunc receives decoded output of a child process.
type LineFunc func(text string)

// Options control a single command invocation.
type Options struct {
	// Env is merged on top of the current process environment.
	Env map[string]string
	Dir string
	// Check turns a non-zero exit code into a *CommandError.
	Check bool
	// Buffered suppresses per-line reporting. The captured text of each stream is reported once
	// after the stream ended instead.
	Buffered bool
	// Stdout and Stderr receive the reported output. They default to the info and error level of
	// the context logger.
	Stdout LineFunc
	Stderr LineFunc
}

// Result contains the captured output of a finished process.
type Result struct {
	RunID    string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with code 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Executor runs commands. Packages that shell out accept an Executor so tests can replace it.
type Executor interface {
	Run(ctx context.Context, argv []string, opts Options) (*Result, error)
}

// Runner is the Executor backed by real child processes.
type Runner struct {
	// Encodings overrides DefaultEncodings.
	Encodings []Encoding
}

var _ Executor = Runner{}

// Run executes argv with the default Runner.
func Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	return Runner{}.Run(ctx, argv, opts)
}

// Run launches argv, drains stdout and stderr concurrently and waits for the process to exit.
// Cancelling ctx kills the process.
func (r Runner) Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	if len(argv) == 0 {
		return nil, eris.New("command must not be empty")
	}

	runID := nanoid.New()
	logger := logging.Log(ctx).With().Str("run", runID).Logger()
	logger.Info().Msgf("executing shell command: %s", Quote(argv))

	encodings := r.Encodings
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	runCtx, abort := context.WithCancel(ctx)
	defer abort()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Env = MergeEnv(os.Environ(), opts.Env)
	cmd.Dir = opts.Dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &StartError{Argv: argv, Err: err}
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &StartError{Argv: argv, Err: err}
	}

	if err = cmd.Start(); err != nil {
		logger.Error().Err(err).Msg("failed to start process")
		return nil, &StartError{Argv: argv, Err: err}
	}

	stdout := &stream{
		encodings: encodings,
		buffered:  opts.Buffered,
		report:    reporter(opts.Stdout, &logger, zerolog.InfoLevel),
	}
	stderr := &stream{
		encodings: encodings,
		buffered:  opts.Buffered,
		report:    reporter(opts.Stderr, &logger, zerolog.ErrorLevel),
	}

	var group errgroup.Group
	for _, item := range []struct {
		s    *stream
		pipe io.Reader
	}{{stdout, stdoutPipe}, {stderr, stderrPipe}} {
		item := item
		group.Go(func() error {
			err := item.s.drain(item.pipe)
			if err != nil {
				// kill the process so the other stream reaches EOF
				abort()
			}
			return err
		})
	}

	drainErr := group.Wait()
	waitErr := cmd.Wait()

	if drainErr != nil {
		logger.Error().Err(drainErr).Msg("error while running command")
		return nil, drainErr
	}

	exitCode := 0
	if waitErr != nil {
		if ctx.Err() != nil {
			return nil, eris.Wrapf(ctx.Err(), "command %s was interrupted", argv[0])
		}

		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, eris.Wrapf(waitErr, "failed to wait for %s", argv[0])
		}
		exitCode = exitErr.ExitCode()
	}

	result := &Result{
		RunID:    runID,
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if opts.Check && exitCode != 0 {
		err := &CommandError{Argv: argv, ExitCode: exitCode, Stderr: result.Stderr}
		logger.Error().Err(err).Msg("error while running command")
		return result, err
	}

	return result, nil
}

func reporter(fn LineFunc, logger *zerolog.Logger, level zerolog.Level) LineFunc {
	if fn != nil {
		return fn
	}

	return func(text string) {
		logger.WithLevel(level).Msg(text)
	}
}

// stream accumulates the decoded lines of one pipe. Only the goroutine draining the pipe writes to it.
type stream struct {
	encodings []Encoding
	buffered  bool
	report    LineFunc
	text      strings.Builder
}

func (s *stream) drain(pipe io.Reader) error {
	reader := bufio.NewReader(pipe)
	for {
		raw, err := reader.ReadBytes('\n')
		if len(raw) > 0 {
			line, decErr := Decode(raw, s.encodings)
			if decErr != nil {
				return decErr
			}

			line = strings.TrimRightFunc(line, unicode.IsSpace)
			s.text.WriteString(line)
			s.text.WriteByte('\n')

			if !s.buffered {
				s.report(line)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return eris.Wrap(err, "failed to read process output")
		}
	}

	if s.buffered {
		if text := s.String(); text != "" {
			s.report(text)
		}
	}

	return nil
}

// String returns the captured text without trailing whitespace.
func (s *stream) String() string {
	return strings.TrimRightFunc(s.text.String(), unicode.IsSpace)
}
