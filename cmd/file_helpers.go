package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/fsutil"
	"github.com/voxium/voxium/tools/pkg/logging"
)

var treeCmd = &cobra.Command{
	Use:   "tree <path>",
	Short: "Print the directory tree below a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		return fsutil.PrintTree(cmd.OutOrStdout(), filepath.Clean(args[0]), depth)
	},
}

var gitkeepCmd = &cobra.Command{
	Use:   "gitkeep <path>",
	Short: "Create .gitkeep files in all empty directories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := fsutil.CreateGitKeep(filepath.Clean(args[0]))
		for _, item := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", item)
		}
		if err != nil {
			return err
		}

		logging.Log(cmd.Context()).Info().Msgf("Created %d .gitkeep files", len(created))
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Delete files and directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		for _, item := range args {
			if err := fsutil.Clean(cmd.Context(), item, dryRun); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	treeCmd.Flags().IntP("depth", "d", 1, "how many directory levels to descend")
	cleanCmd.Flags().BoolP("dry-run", "n", false, "only print what would be deleted")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(gitkeepCmd)
	rootCmd.AddCommand(cleanCmd)
}
