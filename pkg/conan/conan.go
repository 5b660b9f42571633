// Package conan drives the conan package manager installed in the project's virtual environment.
package conan

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/voxium/voxium/tools/pkg/fsutil"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/platform"
	"github.com/voxium/voxium/tools/pkg/shell"
	"github.com/voxium/voxium/tools/pkg/venv"
)

// Conan runs conan commands with CONAN_HOME pointing at the project's conan cache.
type Conan struct {
	Venv     *venv.Env
	Home     string
	Platform platform.Platform
}

// Run executes argv with the conan binary of the virtual environment. A leading "conan" is replaced
// by the resolved binary, otherwise the binary is prepended.
func (c *Conan) Run(ctx context.Context, argv []string, check bool) (*shell.Result, error) {
	if len(argv) == 0 {
		return nil, eris.New("command must not be empty")
	}

	log := logging.Log(ctx)
	log.Debug().Msgf("Conan user home set to: %s", c.Home)

	conanPath, err := c.Venv.ExecutablePath(ctx, "conan")
	if err != nil {
		return nil, eris.Wrap(err, "conan was not found")
	}

	var command []string
	base := filepath.Base(argv[0])
	if strings.EqualFold(strings.TrimSuffix(base, filepath.Ext(base)), "conan") {
		command = append([]string{conanPath}, argv[1:]...)
	} else {
		command = append([]string{conanPath}, argv...)
	}

	return c.Venv.Exec.Run(ctx, command, shell.Options{
		Dir:   c.Venv.Root,
		Check: check,
		Env:   map[string]string{"CONAN_HOME": c.Home},
	})
}

// Install installs conan into the virtual environment.
func (c *Conan) Install(ctx context.Context) error {
	log := logging.Log(ctx)
	log.Info().Msg("Installing conan in the pipenv virtual environment...")

	if _, err := c.Venv.RunPython(ctx, []string{"pip", "install", "conan"}, true); err != nil {
		return eris.Wrap(err, "failed to install conan")
	}

	log.Info().Msg("Conan installed successfully.")
	return nil
}

// ProfilePath returns the location of the named profile inside the conan home.
func (c *Conan) ProfilePath(name string) string {
	return filepath.Join(c.Home, "profiles", name)
}

// InitProfile makes sure the named profile exists and applies the project's compiler settings.
func (c *Conan) InitProfile(ctx context.Context, name string, cppstd int, shared bool) error {
	log := logging.Log(ctx)
	log.Info().Msgf("Checking if profile '%s' exists...", name)

	res, err := c.Run(ctx, []string{"conan", "profile", "show", "--profile", name}, false)
	if err != nil {
		return err
	}

	if res.Success() {
		log.Info().Msgf("Profile '%s' exists.", name)
	} else {
		log.Warn().Msgf("Profile '%s' not found. Creating using 'conan profile detect'...", name)
		if _, err := c.Run(ctx, []string{"conan", "profile", "detect", "--name", name}, true); err != nil {
			return eris.Wrapf(err, "failed to create profile %s", name)
		}
	}

	log.Info().Msgf("Updating profile '%s'...", name)
	path := c.ProfilePath(name)

	updates := []struct{ section, key, value string }{
		{"settings", "compiler.cppstd", strconv.Itoa(cppstd)},
		{"options", "*:*.shared", pyBool(shared)},
	}
	if c.Platform == platform.Linux {
		updates = append(updates, struct{ section, key, value string }{"settings", "compiler.libcxx", "libstdc++11"})
	}

	for _, item := range updates {
		if err := UpdateProfile(path, item.section, item.key, item.value); err != nil {
			return err
		}
		log.Info().Msgf("Profile '%s' updated: [%s] %s=%s", name, item.section, item.key, item.value)
	}

	log.Info().Msgf("Profile '%s' updated successfully.", name)
	return nil
}

// InitUserHome prepares the conan home. An existing cache is wiped if confirm agrees.
func (c *Conan) InitUserHome(ctx context.Context, profile string, cppstd int, confirm venv.ConfirmFunc) error {
	log := logging.Log(ctx)

	if _, err := os.Stat(c.Home); err == nil {
		if confirm != nil && confirm("Do you want to delete the existing conan cache?") {
			if err := fsutil.Clean(ctx, c.Home, false); err != nil {
				return err
			}
		} else {
			log.Info().Msg("Using the existing conan cache.")
		}
	}

	log.Info().Msg("Initializing Conan configuration...")
	if _, err := c.Run(ctx, []string{"conan", "config", "home"}, true); err != nil {
		return eris.Wrap(err, "failed to initialize the conan home")
	}

	if err := c.InitProfile(ctx, profile, cppstd, true); err != nil {
		return err
	}

	log.Info().Msgf("Conan user home successfully created and configured at %s", c.Home)
	return nil
}

// Configure initializes the conan home and checks the default build profile.
func (c *Conan) Configure(ctx context.Context, profile string, cppstd int, confirm venv.ConfirmFunc) error {
	logging.Log(ctx).Info().Msg("Configuring Conan...")

	if err := c.InitUserHome(ctx, profile, cppstd, confirm); err != nil {
		return err
	}

	if _, err := c.Run(ctx, []string{"conan", "profile", "show", "-pr:b", "default"}, true); err != nil {
		return eris.Wrap(err, "failed to show the default profile")
	}

	return nil
}

// Setup checks pipenv, installs conan and configures it.
func (c *Conan) Setup(ctx context.Context, profile string, cppstd int, confirm venv.ConfirmFunc) error {
	log := logging.Log(ctx)
	log.Info().Msg("Conan setup begin!")

	if err := c.Venv.CheckPipenv(ctx); err != nil {
		return err
	}

	if err := c.Install(ctx); err != nil {
		return err
	}

	if err := c.Configure(ctx, profile, cppstd, confirm); err != nil {
		return err
	}

	log.Info().Msg("Conan setup end!")
	return nil
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
