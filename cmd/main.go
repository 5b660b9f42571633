package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/voxium/voxium/tools/pkg/logging"
	"github.com/voxium/voxium/tools/pkg/venv"
)

var logger = zerolog.New(NewConsoleWriter(os.Stderr)).Level(zerolog.InfoLevel)

var rootCmd = &cobra.Command{
	Use:   "tool",
	Short: "Build tools for Voxium",
	Long: `This command bundles the tools used to develop Voxium.
This includes setting up the python and conan environment, building the engine, formatting code, ...`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}

		logJSON, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}

		if logJSON {
			logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			logger = zerolog.New(NewConsoleWriter(os.Stderr))
		}

		if verbose {
			logger = logger.Level(zerolog.DebugLevel)
		} else {
			logger = logger.Level(zerolog.InfoLevel)
		}

		cmd.SetContext(logging.WithLogger(cmd.Context(), &logger))
		return nil
	},
}

// exitCodeError makes Execute exit with a specific status without logging anything.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "project config file (default: <project root>/Tools/Config/ProjectConfig.json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("log-json", false, "log JSON events instead of coloured messages")
}

// Execute runs the CLI and exits with a non-zero status on failure. Setup errors exit with 2.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	var exitErr exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	if eris.Is(err, venv.ErrSetup) {
		logger.Error().Err(err).Msg("Environment setup error")
		os.Exit(2)
	}

	logger.Error().Err(err).Msg("Command failed")
	os.Exit(1)
}
