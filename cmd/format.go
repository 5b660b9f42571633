package cmd

import (
	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/format"
	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/shell"
	"github.com/voxium/voxium/tools/pkg/venv"
)

var formatCmd = &cobra.Command{
	Use:   "format <path>",
	Short: "Format C/C++ files with clang-format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := cmd.Flags().GetString("style")
		if err != nil {
			return err
		}

		recursive, err := cmd.Flags().GetBool("recursive")
		if err != nil {
			return err
		}

		root, err := projectRoot("")
		if err != nil {
			return err
		}

		env := venv.New(root)
		formatter := &format.Formatter{Exec: shell.Runner{}, Lookup: env.ExecutablePath}

		stats, err := formatter.Format(cmd.Context(), args[0], style, recursive)
		if err != nil {
			return err
		}

		logging.Log(cmd.Context()).Info().Msgf("Formatted %d files, %d failed", stats.Formatted, stats.Failed)
		return nil
	},
}

func init() {
	formatCmd.Flags().StringP("style", "s", format.DefaultStyle, "the clang-format style to use")
	formatCmd.Flags().BoolP("recursive", "r", false, "recursively format files in a directory")

	rootCmd.AddCommand(formatCmd)
}
