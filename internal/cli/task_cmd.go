package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTaskCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Complete tasks and log time against them",
	}
	cmd.AddCommand(
		newTaskShowCmd(app, flags),
		newTaskDoneCmd(app),
		newTaskUndoCmd(app),
		newTaskToggleCmd(app),
		newTaskLogCmd(app),
	)
	return cmd
}

func newTaskShowCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task and the notes linked to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			ref, ok := state.FindTask(args[0])
			if !ok {
				return fmt.Errorf("task %s is not in the plan", args[0])
			}
			f := flags.formatter(app)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week %d · %s · %s\n", ref.Week.Week, f.T(ref.Day.Day), f.T(ref.Day.Topic))
			fmt.Fprintln(out, f.FormatTaskLine(state, *ref.Task))

			notes, err := app.Notes.ListForTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(notes) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, f.FormatNoteList(notes))
			}
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <task-id>",
		Aliases: []string{"complete"},
		Short:   "Mark a task completed, crediting its planned duration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Complete(cmd.Context(), args[0])
		},
	}
}

func newTaskUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <task-id>",
		Short: "Mark a task incomplete and clear its time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Uncomplete(cmd.Context(), args[0])
		},
	}
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task between completed and incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Tasks.Toggle(cmd.Context(), args[0])
			return err
		},
	}
}

func newTaskLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <task-id> <minutes>",
		Short: "Add focus minutes to a task without completing it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes must be a number, got %q", args[1])
			}
			if err := app.Tasks.LogFocus(cmd.Context(), args[0], minutes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d min on %s (total %d min)\n",
				minutes, args[0], app.Store.State().TimeSpentOn(args[0]))
			return nil
		},
	}
}
