package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg"
	"github.com/voxium/voxium/tools/pkg/conan"
	"github.com/voxium/voxium/tools/pkg/config"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/platform"
	"github.com/voxium/voxium/tools/pkg/venv"
)

// projectRoot searches the project root above start, falling back to the working directory.
func projectRoot(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}

	return pkg.FindProjectRoot(start)
}

// loadProject loads the project config and applies its log level unless --verbose was passed.
func loadProject(cmd *cobra.Command, start string) (*config.Project, error) {
	root, err := projectRoot(start)
	if err != nil {
		return nil, err
	}

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	project, err := config.Load(root, configFile)
	if err != nil {
		return nil, err
	}

	if err := project.Config.Validate(); err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	if !verbose {
		leveled := logging.Log(cmd.Context()).Level(project.Config.LogLevel())
		cmd.SetContext(logging.WithLogger(cmd.Context(), &leveled))
	}

	logging.Log(cmd.Context()).Debug().Str("path", project.File).Msgf("Loaded %s", project.File)
	return project, nil
}

func newConan(project *config.Project, env *venv.Env) (*conan.Conan, error) {
	target, err := platform.Detect()
	if err != nil {
		return nil, err
	}

	home, err := project.ConanUserHome(target)
	if err != nil {
		return nil, err
	}

	return &conan.Conan{Venv: env, Home: home, Platform: target}, nil
}

// confirmPrompt asks questions on out and reads y/n answers from in. With assumeYes set every
// question is answered with yes.
func confirmPrompt(in io.Reader, out io.Writer, assumeYes bool) venv.ConfirmFunc {
	reader := bufio.NewReader(in)

	return func(question string) bool {
		if assumeYes {
			fmt.Fprintf(out, "%s (y/n): y\n", question)
			return true
		}

		fmt.Fprintf(out, "%s (y/n): ", question)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			fmt.Fprintln(out)
			return false
		}

		return strings.ToLower(strings.TrimSpace(answer)) == "y"
	}
}
