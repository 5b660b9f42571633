package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/envfile"
	"github.com/voxium/voxium/tools/pkg/venv"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the project configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject(cmd, "")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), project.Summary())
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the project configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a value using a dotted key like conan.user_home.linux",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fallback, err := cmd.Flags().GetString("default")
		if err != nil {
			return err
		}

		project, err := loadProject(cmd, "")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), project.Get(args[0], fallback))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject(cmd, "")
		if err != nil {
			return err
		}

		out, err := project.YAML()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var genEnvCmd = &cobra.Command{
	Use:   "gen-env",
	Short: "Write .vscode/.env with the tool paths of the virtual environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot("")
		if err != nil {
			return err
		}

		_, err = envfile.Generate(cmd.Context(), root, venv.New(root).ExecutablePath)
		return err
	},
}

func init() {
	configGetCmd.Flags().String("default", "", "value printed if the key does not exist")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(genEnvCmd)
}
