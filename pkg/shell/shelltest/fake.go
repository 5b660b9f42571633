// Package shelltest provides a scripted shell.Executor for tests of code that shells out.
package shelltest

import (
	"context"
	"strings"
	"sync"

	"github.com/voxium/voxium/tools/pkg/shell"
)

// Call is one recorded invocation.
type Call struct {
	Argv []string
	Opts shell.Options
}

// Command returns the argv joined by spaces.
func (c Call) Command() string {
	return strings.Join(c.Argv, " ")
}

// HandlerFunc produces the outcome of a call. A nil result is treated as a successful run without
// output.
type HandlerFunc func(argv []string, opts shell.Options) (*shell.Result, error)

// Fake records every call and answers with Handler, or with Results keyed by the joined argv.
// Unknown commands succeed without output. Check is honoured like the real runner does it.
type Fake struct {
	Handler HandlerFunc
	Results map[string]*shell.Result

	mu    sync.Mutex
	calls []Call
}

var _ shell.Executor = (*Fake)(nil)

// Run implements shell.Executor.
func (f *Fake) Run(ctx context.Context, argv []string, opts shell.Options) (*shell.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls = append(f.calls, Call{Argv: append([]string(nil), argv...), Opts: opts})
	f.mu.Unlock()

	var (
		res *shell.Result
		err error
	)
	if f.Handler != nil {
		res, err = f.Handler(argv, opts)
	} else if f.Results != nil {
		res = f.Results[strings.Join(argv, " ")]
	}

	if err != nil {
		return res, err
	}
	if res == nil {
		res = &shell.Result{}
	}

	if opts.Check && res.ExitCode != 0 {
		return res, &shell.CommandError{Argv: argv, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	return res, nil
}

// Calls returns a copy of the recorded calls.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Call(nil), f.calls...)
}

// Commands returns the recorded argvs joined by spaces.
func (f *Fake) Commands() []string {
	calls := f.Calls()
	result := make([]string, len(calls))
	for i, call := range calls {
		result[i] = call.Command()
	}
	return result
}
