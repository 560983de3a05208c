package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/curriculum"
)

func newPlanCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show every week of the learning plan with its progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flags.formatter(app)
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatPlanOverview(app.Store.State()))
			return nil
		},
	}
	cmd.AddCommand(newPlanValidateCmd(app))
	return cmd
}

func newPlanValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a plan document for structural problems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.PlanPath
			if len(args) == 1 {
				path = args[0]
			}
			plan, err := curriculum.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := curriculum.Validate(plan)
			if len(problems) == 0 {
				fmt.Fprintf(out, "%s: %d weeks, %d tasks, no problems found\n",
					path, len(plan.Weeks), len(plan.AllTasks()))
				return nil
			}
			for _, p := range problems {
				fmt.Fprintf(out, "  - %v\n", p)
			}
			return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
		},
	}
}
