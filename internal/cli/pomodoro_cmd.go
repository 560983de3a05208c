package cli

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
)

func newPomodoroCmd(app *App, flags *displayFlags) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "pomodoro [task-id]",
		Aliases: []string{"focus"},
		Short:   "Run the focus timer, logging finished work intervals to a task",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			initial := pomodoro.New(app.Pomodoro)
			label := ""
			if len(args) == 1 {
				ref, ok := state.FindTask(args[0])
				if !ok {
					return fmt.Errorf("task %s is not in the plan", args[0])
				}
				initial = initial.Bind(args[0])
				f := flags.formatter(app)
				label = fmt.Sprintf("%s (%s)", f.T(ref.Task.Description), ref.Task.ID)
			}

			if plain || !app.interactive() {
				return runPlainPomodoro(cmd, app, initial)
			}

			m := newPomodoroModel(cmd.Context(), app.Focus, flags.formatter(app), initial, label)
			_, err := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print timer events instead of opening the full-screen timer")
	return cmd
}

// runPlainPomodoro runs a single interval on a pomodoro.Runner and prints
// its progress once a minute. Events are best effort; the completion is
// delivered through the OnComplete hook.
func runPlainPomodoro(cmd *cobra.Command, app *App, initial pomodoro.State) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runner := pomodoro.NewRunner(initial, pomodoro.RunnerConfig{TickInterval: app.TickInterval})
	defer runner.Close()
	events := runner.Subscribe(64)
	completed := make(chan pomodoro.Completion, 1)
	runner.OnComplete(func(c pomodoro.Completion) { completed <- c })

	started := runner.Start()
	printTimerLine(out, started)

	for {
		select {
		case <-ctx.Done():
			runner.Stop()
			fmt.Fprintln(out, "Timer cancelled")
			return ctx.Err()
		case ev := <-events:
			if ev.Type == pomodoro.EventTick && ev.State.TimeLeft > 0 && ev.State.TimeLeft%time.Minute == 0 {
				printTimerLine(out, ev.State)
			}
		case c := <-completed:
			fmt.Fprintf(out, "%s finished. Up next: %s\n", c.Mode.Label(), c.Next.Label())
			return app.Focus.RecordCompletion(ctx, c)
		}
	}
}

func printTimerLine(w io.Writer, s pomodoro.State) {
	fmt.Fprintf(w, "%s  %s left\n", s.Mode.Label(), formatter.FormatClock(s.TimeLeft))
}
