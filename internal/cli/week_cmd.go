package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWeekCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "week [number]",
		Short: "Show the days of a week (default: the current week)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			f := flags.formatter(app)
			if state.Plan == nil {
				fmt.Fprintln(cmd.OutOrStdout(), f.FormatNoPlan())
				return nil
			}
			w, err := resolveWeek(state, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatWeek(state, w))
			return nil
		},
	}
}

func newDayCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "day [week] [day]",
		Short: "Show the tasks, resources and prompt of a day (default: the current day)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			f := flags.formatter(app)
			if state.Plan == nil {
				fmt.Fprintln(cmd.OutOrStdout(), f.FormatNoPlan())
				return nil
			}
			w, d, err := resolveWeekDay(state, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatDay(state, w, d))
			return nil
		},
	}
}

func newGotoCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <week> [day]",
		Short: "Move the current week/day cursor",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			if state.Plan == nil {
				return errNoPlan
			}
			w, err := resolveWeek(state, args[:1])
			if err != nil {
				return err
			}
			day := ""
			if len(args) == 2 {
				day = args[1]
			}
			if err := app.Prefs.GoTo(cmd.Context(), w.Week, day); err != nil {
				return err
			}

			next := app.Store.State()
			f := flags.formatter(app)
			d := next.CurrentDay()
			fmt.Fprintf(cmd.OutOrStdout(), "Now at week %d, %s\n", next.Progress.CurrentWeek, f.T(d.Day))
			return nil
		},
	}
}
