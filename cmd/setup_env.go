package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/envfile"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
	"github.com/voxium/voxium/tools/pkg/venv"
)

var setupEnvCmd = &cobra.Command{
	Use:   "setup-env <root>",
	Short: "Setup the development environment",
	Long: `Creates the pipenv virtual environment in <root>, installs conan, cmake and the clang tools
into it, prepares the conan home and writes .vscode/.env.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pypiSource, err := cmd.Flags().GetString("pypi-source")
		if err != nil {
			return err
		}

		assumeYes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		logging.Log(ctx).Info().Msg("Setup the development environment.")
		confirm := confirmPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes)

		env, err := venv.SetupPythonEnv(ctx, shell.Runner{}, args[0], pypiSource, confirm)
		if err != nil {
			return err
		}

		project, err := loadProject(cmd, env.Root)
		if err != nil {
			return err
		}
		ctx = cmd.Context()

		conan, err := newConan(project, env)
		if err != nil {
			return err
		}

		cfg := &project.Config
		if err := conan.Setup(ctx, cfg.Conan.Profile, cfg.Compiler.Cppstd, confirm); err != nil {
			return err
		}

		_, err = envfile.Generate(ctx, project.Root, env.ExecutablePath)
		return err
	},
}

func init() {
	setupEnvCmd.Flags().String("pypi-source", venv.DefaultPyPISource, "PyPI source for package installation")
	setupEnvCmd.Flags().BoolP("yes", "y", false, "answer yes to all questions (recreates existing environments)")

	rootCmd.AddCommand(setupEnvCmd)
}
