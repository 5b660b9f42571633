package venv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/fsutil"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
)

// Tools lists the packages installed into every new virtual environment.
var Tools = []string{"cmake", "clang-format", "clang-tidy"}

// Create initializes a new pipenv environment for pythonVersion with packages from pypiSource.
func (e *Env) Create(ctx context.Context, pythonVersion, pypiSource string) error {
	log := logging.Log(ctx)

	steps := []struct {
		msg  string
		argv []string
	}{
		{"Upgrading pip...", []string{"python", "-m", "pip", "install", "--upgrade", "pip", "-i", pypiSource}},
		{"Installing pipenv...", []string{"python", "-m", "pip", "install", "pipenv", "-i", pypiSource}},
		{"Initializing virtualenv...", []string{"pipenv", "--python", pythonVersion}},
		{"Upgrading pip in virtualenv...", []string{"pipenv", "install", "-i", pypiSource}},
	}
	for _, tool := range Tools {
		steps = append(steps, struct {
			msg  string
			argv []string
		}{"Installing " + tool + " in virtualenv...", []string{"pipenv", "install", tool, "-i", pypiSource}})
	}

	for _, step := range steps {
		log.Info().Msg(step.msg)
		if _, err := e.run(ctx, step.argv, true, pipenvEnv); err != nil {
			return eris.Wrapf(err, "failed to create the virtual environment")
		}
	}

	return nil
}

// Delete removes the virtual environment, including a leftover .venv folder.
func (e *Env) Delete(ctx context.Context) error {
	log := logging.Log(ctx)
	log.Info().Msg("Deleting existing virtual environment...")

	if _, err := e.run(ctx, []string{"pipenv", "--rm"}, true, nil); err != nil {
		return eris.Wrap(err, "failed to remove the virtual environment")
	}

	venvPath := filepath.Join(e.Root, ".venv")
	if _, err := os.Stat(venvPath); err != nil {
		log.Info().Msg("No .venv directory found, skipping manual deletion.")
		return nil
	}

	log.Info().Msgf("Force deleting virtual environment directory: %s", venvPath)
	return fsutil.Clean(ctx, venvPath, false)
}

// RunPython runs argv with the interpreter of the virtual environment. A leading python or python3
// is replaced by the interpreter, anything else is run as a module (python -m argv...).
func (e *Env) RunPython(ctx context.Context, argv []string, check bool) (*shell.Result, error) {
	if len(argv) == 0 {
		return nil, eris.New("command must not be empty")
	}

	python, err := e.ExecutablePath(ctx, "python")
	if err != nil {
		return nil, err
	}

	var command []string
	switch stem(argv[0]) {
	case "python", "python3":
		command = append([]string{python}, argv[1:]...)
	default:
		command = append([]string{python, "-m"}, argv...)
	}

	logging.Log(ctx).Info().Msgf("Run: %s", strings.Join(command, " "))
	return e.run(ctx, command, check, pipenvEnv)
}

func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
