package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/aoc-2018/internal/application"
	"github.com/bnema/aoc-2018/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *app) *cobra.Command {
	var inputPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "day <n>",
		Short:   "Solve one day and print both answers",
		Example: "  aoc day 4\n  aoc day 4 --input ./guards.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}

			var report application.Report
			if inputPath != "" {
				report, err = app.service.SolvePath(cmd.Context(), day, inputPath)
			} else {
				report, err = app.service.Solve(cmd.Context(), day)
			}
			if err != nil {
				return err
			}

			return writeSolution(cmd, report.Solution, asJSON)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read the puzzle input from this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print answers as JSON")

	return cmd
}

func writeSolution(cmd *cobra.Command, solution domain.Solution, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(solution)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), solution.Lines())
	return err
}
