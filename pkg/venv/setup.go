package venv

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
)

// DefaultPyPISource is the package index used when none is configured.
const DefaultPyPISource = "https://pypi.tuna.tsinghua.edu.cn/simple"

const banner = "########################################################################################"

// SetupPythonEnv prepares the virtual environment in root. An existing environment is kept unless
// confirm agrees to recreate it.
func SetupPythonEnv(ctx context.Context, exec shell.Executor, root, pypiSource string, confirm ConfirmFunc) (*Env, error) {
	log := logging.Log(ctx)

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to resolve %s", root)
	}

	if pypiSource == "" {
		pypiSource = DefaultPyPISource
	}

	log.Info().Msgf("Setting up the python environment in %s, using PyPI source %s", root, pypiSource)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, eris.Wrapf(ErrSetup, "Python environment root %s does not exist or is not a directory", root)
	}

	log.Info().Msg(banner)
	log.Info().Msgf("# ENV_ROOT             = %s", root)
	log.Info().Msgf("# PYPI_SOURCE          = %s", pypiSource)
	log.Info().Msg(banner)

	log.Info().Msg("Starting initializing python virtual environment...")
	defer log.Info().Msg("Finished initializing python virtual environment.")

	env := &Env{Exec: exec, Root: root}

	pythonVersion, err := env.PythonInfo(ctx)
	if err != nil {
		return nil, err
	}

	exists, venvPath, err := env.PipenvVenv(ctx)
	if err != nil {
		return nil, err
	}

	if exists {
		log.Info().Msgf("Python virtual environment already exists in %s.", venvPath)
	}

	switch {
	case !exists:
		err = env.Create(ctx, pythonVersion, pypiSource)
	case confirm != nil && confirm("Do you want to delete the existing virtual environment?"):
		if err = env.Delete(ctx); err == nil {
			err = env.Create(ctx, pythonVersion, pypiSource)
		}
	default:
		log.Info().Msg("Using the existing virtual environment.")
	}
	if err != nil {
		return nil, err
	}

	if _, _, err := env.VenvPython(ctx); err != nil {
		return nil, eris.Wrapf(err, "cannot detect python in the virtual environment of %s", root)
	}

	return env, nil
}
