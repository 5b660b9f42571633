package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/shell"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Run a command and log its output line by line",
	Long: `Runs a command, decodes its output (utf-8, gbk or big5) and logs stdout at info and stderr at
error level. The tool exits with the command's exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		check, err := flags.GetBool("check")
		if err != nil {
			return err
		}

		buffered, err := flags.GetBool("buffered")
		if err != nil {
			return err
		}

		env, err := flags.GetStringToString("env")
		if err != nil {
			return err
		}

		dir, err := flags.GetString("dir")
		if err != nil {
			return err
		}

		argv := args
		if len(argv) == 1 {
			// allow passing the command as a single string
			argv = shell.Split(argv[0])
		}

		res, err := shell.Run(cmd.Context(), argv, shell.Options{
			Env:      env,
			Dir:      dir,
			Check:    check,
			Buffered: buffered,
		})

		var cmdErr *shell.CommandError
		if errors.As(err, &cmdErr) {
			// the runner already logged the failure
			return exitCodeError{code: cmdErr.ExitCode}
		}
		if err != nil {
			return err
		}

		if !res.Success() {
			return exitCodeError{code: res.ExitCode}
		}

		return nil
	},
}

func init() {
	flags := runCmd.Flags()
	flags.Bool("check", false, "fail with a detailed error if the command exits with a non-zero code")
	flags.Bool("buffered", false, "log the output once after each stream ended instead of line by line")
	flags.StringToStringP("env", "e", nil, "additional environment variables (KEY=VALUE)")
	flags.String("dir", "", "working directory of the command")
	flags.SetInterspersed(false)

	rootCmd.AddCommand(runCmd)
}
