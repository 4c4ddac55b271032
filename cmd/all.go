package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	answersrender "github.com/bnema/aoc-2018/internal/adapters/render/answers"
	"github.com/bnema/aoc-2018/internal/application"
	"github.com/spf13/cobra"
)

func newAllCmd(app *app) *cobra.Command {
	var asJSON bool
	var record bool
	var timing bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reports []application.Report
			solve := func(ctx context.Context) error {
				var err error
				reports, err = app.service.SolveAll(ctx)
				return err
			}

			if asJSON {
				if err := solve(cmd.Context()); err != nil {
					return err
				}
			} else {
				if err := runSolveSpinner(cmd.Context(), cmd.ErrOrStderr(), "Solving puzzles...", solve); err != nil {
					return err
				}
			}

			if record {
				if err := app.service.Record(cmd.Context(), reports); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(application.Solutions(reports))
			}

			return writeReports(cmd, app, reports, answersrender.RenderOptions{ShowTiming: timing})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print answers as JSON")
	cmd.Flags().BoolVar(&record, "record", false, "Store the answers in the answers file")
	cmd.Flags().BoolVar(&timing, "timing", false, "Show how long each day took")

	return cmd
}

func writeReports(cmd *cobra.Command, app *app, reports []application.Report, opts answersrender.RenderOptions) error {
	rendered, err := app.renderer(reports, opts)
	if err != nil {
		return fmt.Errorf("render answers: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
