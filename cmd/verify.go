package cmd

import (
	"encoding/json"
	"errors"

	answersrender "github.com/bnema/aoc-2018/internal/adapters/render/answers"
	"github.com/bnema/aoc-2018/internal/application"
	"github.com/spf13/cobra"
)

func newVerifyCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Re-solve recorded days and compare with the answers file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := app.service.Verify(cmd.Context())
			if err != nil && !errors.Is(err, application.ErrAnswerMismatch) {
				return err
			}

			var writeErr error
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				writeErr = enc.Encode(reports)
			} else {
				writeErr = writeReports(cmd, app, reports, answersrender.RenderOptions{Title: "Verification"})
			}

			return errors.Join(writeErr, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the verification as JSON")

	return cmd
}
