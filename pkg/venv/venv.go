// Package venv manages the pipenv virtual environment that provides python, conan, cmake and the
// clang tools for a project.
package venv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/platform"
	"github.com/voxium/voxium/tools/pkg/shell"
)

var (
	// ErrSetup marks failures that leave the development environment unusable.
	ErrSetup = eris.New("environment setup failed")
	// ErrNotFound is returned when an executable is missing from the virtual environment.
	ErrNotFound = eris.New("executable not found in virtual environment")
)

var minPythonVersion = semver.MustParse("3.7.0")

// pipenvEnv is added to every pipenv and venv python invocation so the environment lives in
// <root>/.venv.
var pipenvEnv = map[string]string{
	"PIPENV_VENV_IN_PROJECT": "TRUE",
	"PIPENV_MAX_DEPTH":       "10",
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(question string) bool

// Env runs pipenv related commands inside Root.
type Env struct {
	Exec shell.Executor
	Root string
}

// New returns an Env for root that uses the real process runner.
func New(root string) *Env {
	return &Env{Exec: shell.Runner{}, Root: root}
}

func (e *Env) run(ctx context.Context, argv []string, check bool, env map[string]string) (*shell.Result, error) {
	return e.Exec.Run(ctx, argv, shell.Options{Dir: e.Root, Check: check, Env: env})
}

// PythonInfo checks the python found on PATH and returns its "major.minor" version.
func (e *Env) PythonInfo(ctx context.Context) (string, error) {
	res, err := e.run(ctx, []string{"python", "--version"}, true, nil)
	if err != nil {
		return "", eris.Wrap(err, "failed to query the python version")
	}

	output := res.Stdout
	if output == "" {
		// python 2 prints its version on stderr
		output = res.Stderr
	}
	logging.Log(ctx).Info().Msgf("Detect Python version: %s", output)

	fields := strings.Fields(output)
	if len(fields) < 2 {
		return "", eris.Wrapf(ErrSetup, "unexpected python version output %q", output)
	}

	version, err := semver.NewVersion(fields[1])
	if err != nil {
		return "", eris.Wrapf(ErrSetup, "failed to parse python version %q: %v", fields[1], err)
	}

	if version.LessThan(minPythonVersion) {
		return "", eris.Wrapf(ErrSetup, "Python %s or higher is required, found %s", minPythonVersion, version)
	}

	return fmt.Sprintf("%d.%d", version.Major(), version.Minor()), nil
}

// PipenvVenv returns the location of the project's virtual environment if pipenv knows one.
func (e *Env) PipenvVenv(ctx context.Context) (bool, string, error) {
	res, err := e.run(ctx, []string{"pipenv", "--venv"}, false, nil)
	if err != nil {
		return false, "", err
	}

	return res.Success(), res.Stdout, nil
}

// CheckPipenv fails with ErrSetup if pipenv can't be run.
func (e *Env) CheckPipenv(ctx context.Context) error {
	res, err := e.run(ctx, []string{"pipenv", "--version"}, false, nil)
	if err != nil {
		return eris.Wrapf(ErrSetup, "Pipenv doesn't exist: %v", err)
	}
	if !res.Success() {
		return eris.Wrap(ErrSetup, "Pipenv doesn't exist")
	}

	return nil
}

// ExecutablePath locates name inside the virtual environment. Any extension of name is ignored.
func (e *Env) ExecutablePath(ctx context.Context, name string) (string, error) {
	log := logging.Log(ctx)

	exists, venvPath, err := e.PipenvVenv(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		log.Error().Msgf("Cannot detect pipenv environment in %s", e.Root)
		return "", eris.Wrapf(ErrNotFound, "no pipenv environment in %s", e.Root)
	}

	tool := stem(name)
	for _, candidate := range platform.ExecutableCandidates(venvPath, tool) {
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			log.Debug().Msgf("Detect %s in virtual environment: %s", tool, venvPath)
			return candidate, nil
		}
	}

	log.Error().Msgf("No %s found in virtual environment: %s", tool, venvPath)
	return "", eris.Wrapf(ErrNotFound, "%s in %s", tool, venvPath)
}

// VenvPython returns the interpreter of the virtual environment and its version string.
func (e *Env) VenvPython(ctx context.Context) (string, string, error) {
	python, err := e.ExecutablePath(ctx, "python")
	if err != nil {
		return "", "", err
	}

	res, err := e.run(ctx, []string{python, "--version"}, true, nil)
	if err != nil {
		return "", "", eris.Wrapf(err, "failed to run %s", python)
	}

	logging.Log(ctx).Info().Msgf("Detect Python version: %s", res.Stdout)
	return python, res.Stdout, nil
}
