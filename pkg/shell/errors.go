package shell

import (
	"fmt"
	"strings"
)

// StartError is returned when the child process could not be launched.
type StartError struct {
	Argv []string
	Err  error
}

var _ error = (*StartError)(nil)

func (e StartError) Error() string {
	return fmt.Sprintf("failed to start process %s: %v", e.Argv[0], e.Err)
}

func (e StartError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a line of output can't be decoded with any of the configured encodings.
type DecodeError struct {
	Raw       []byte
	Encodings []string
}

var _ error = (*DecodeError)(nil)

func (e DecodeError) Error() string {
	return fmt.Sprintf("decoding failed for %q, supported encodings: %s", e.Raw, strings.Join(e.Encodings, ", "))
}

// CommandError is returned for a non-zero exit code if Options.Check is set.
type CommandError struct {
	Argv     []string
	ExitCode int
	Stderr   string
}

var _ error = (*CommandError)(nil)

func (e CommandError) Error() string {
	msg := fmt.Sprintf("command %s failed with return code %d", Quote(e.Argv), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}
