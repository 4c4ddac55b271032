package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool
	state := &app{}

	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2018 solutions, days 1 to 6",
		Long:          "aoc solves the first six Advent of Code 2018 puzzles from their input files and prints both answers of each day.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			wired, err := wireApp(newLogger(cmd.ErrOrStderr(), verbose))
			if err != nil {
				return err
			}
			*state = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDayCmd(state),
		newAllCmd(state),
		newVerifyCmd(state),
	)

	return rootCmd
}

func newLogger(output io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(output),
		level,
	)

	return zap.New(core)
}
