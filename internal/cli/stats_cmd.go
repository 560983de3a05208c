package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"status"},
		Short:   "Show completion, hours, streak and per-type progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.GetStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), flags.formatter(app).FormatStats(report))
			return nil
		},
	}
}
