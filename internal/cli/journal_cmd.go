package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/service"
	"github.com/alexanderramin/progressmate/internal/store"
)

func newJournalCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write daily reflections",
	}
	cmd.AddCommand(
		newJournalWriteCmd(app, flags),
		newJournalShowCmd(app, flags),
		newJournalListCmd(app, flags),
	)
	return cmd
}

// journalSlot returns the week and day a journal command targets: the
// explicit values when given, the current cursor otherwise.
func journalSlot(s store.AppState, week int, day string) (int, string) {
	if week <= 0 {
		week = s.Progress.CurrentWeek
	}
	if day == "" {
		day = s.Progress.CurrentDay
	}
	return week, day
}

func newJournalWriteCmd(app *App, flags *displayFlags) *cobra.Command {
	var week int
	var day string

	cmd := &cobra.Command{
		Use:   "write [content...]",
		Short: "Save the reflection for a day, replacing any earlier one",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			w, d := journalSlot(state, week, day)
			content := strings.Join(args, " ")

			if strings.TrimSpace(content) == "" && app.interactive() {
				f := flags.formatter(app)
				title := fmt.Sprintf("Week %d, %s", w, d)
				var points []string
				if dd := state.Plan.FindWeek(w).FindDay(d); dd != nil {
					title = f.T(dd.NotesPrompt.Title)
					for _, p := range dd.NotesPrompt.Points {
						points = append(points, "• "+f.T(p))
					}
				}
				if existing, ok := state.JournalEntryFor(w, d); ok {
					content = existing.Content
				}
				if err := journalForm(f.Palette, title, points, &content).Run(); err != nil {
					return err
				}
			}

			entry, updated, err := app.Journal.Save(cmd.Context(), w, d, content)
			if err != nil {
				return err
			}
			verb := "Saved"
			if updated {
				verb = "Updated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s journal for week %d, %s (%s)\n", verb, entry.Week, entry.Day, entry.Date)
			return nil
		},
	}

	cmd.Flags().IntVarP(&week, "week", "w", 0, "Week number (default: current week)")
	cmd.Flags().StringVarP(&day, "day", "d", "", "Day key such as sat (default: current day)")
	return cmd
}

func newJournalShowCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [week] [day]",
		Short: "Show the reflection of a day (default: the current day)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			var week int
			var day string
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("week must be a positive number, got %q", args[0])
				}
				week = n
			}
			if len(args) > 1 {
				day = args[1]
			}
			week, day = journalSlot(state, week, day)

			entry, err := app.Journal.Get(cmd.Context(), week, day)
			if errors.Is(err, service.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No journal entry for week %d, %s.\n", week, day)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), flags.formatter(app).FormatJournalEntry(*entry))
			return nil
		},
	}
}

func newJournalListCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), flags.formatter(app).FormatJournalList(entries))
			return nil
		},
	}
}
