package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/domain"
)

func newConfigCmd(app *App, flags *displayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change stored preferences",
	}
	cmd.AddCommand(
		newConfigShowCmd(app, flags),
		newConfigLangCmd(app),
		newConfigThemeCmd(app),
	)
	return cmd
}

func newConfigShowCmd(app *App, flags *displayFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.Store.State()
			f := flags.formatter(app)
			rows := [][]string{
				{"language", string(state.Language)},
				{"theme", string(state.Theme)},
				{"position", fmt.Sprintf("week %d, %s", state.Progress.CurrentWeek, state.Progress.CurrentDay)},
				{"focus", formatter.FormatClock(app.Pomodoro.Work)},
				{"short break", formatter.FormatClock(app.Pomodoro.ShortBreak)},
				{"long break", formatter.FormatClock(app.Pomodoro.LongBreak)},
			}
			if app.PlanPath != "" {
				rows = append(rows, []string{"plan", app.PlanPath})
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.RenderTable([]string{"Setting", "Value"}, rows))
			return nil
		},
	}
}

func newConfigLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "lang <en|ar>",
		Short:     "Set the display language",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.LangEnglish), string(domain.LangArabic)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Prefs.SetLanguage(cmd.Context(), domain.Language(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme <light|dark|toggle>",
		Short:     "Set or toggle the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := domain.Theme(args[0])
			if args[0] == "toggle" {
				var err error
				if theme, err = app.Prefs.ToggleTheme(cmd.Context()); err != nil {
					return err
				}
			} else if err := app.Prefs.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		},
	}
}
