package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/service"
	"github.com/alexanderramin/progressmate/internal/store"
)

// App holds the store and the services used by CLI commands.
type App struct {
	Store    *store.Store
	Tasks    service.TaskService
	Prefs    service.PreferenceService
	Notes    service.NoteService
	Journal  service.JournalService
	Skills   service.SkillService
	Focus    service.FocusService
	Status   service.StatusService
	Pomodoro pomodoro.Durations
	PlanPath string

	// TickInterval is the wall-clock length of one timer tick in plain
	// mode. Zero means pomodoro.Tick.
	TickInterval time.Duration

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// pomodoro TUI are only used when it returns true.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// displayFlags are per-invocation overrides of the stored preferences.
type displayFlags struct {
	lang  langValue
	theme themeValue
}

// NewRootCmd creates the top-level "progressmate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &displayFlags{}
	root := &cobra.Command{
		Use:           "progressmate",
		Short:         "Track progress through a bilingual cybersecurity learning plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flags.formatter(app)
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatPlanOverview(app.Store.State()))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			printToasts(cmd, flags.formatter(app), app.Store.State().Toasts)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.Var(&flags.lang, "lang", "display language for this command (en|ar)")
	pf.Var(&flags.theme, "theme", "color theme for this command (light|dark)")

	root.AddCommand(
		newPlanCmd(app, flags),
		newWeekCmd(app, flags),
		newDayCmd(app, flags),
		newTaskCmd(app, flags),
		newNoteCmd(app, flags),
		newJournalCmd(app, flags),
		newSkillCmd(app, flags),
		newStatsCmd(app, flags),
		newPomodoroCmd(app, flags),
		newConfigCmd(app, flags),
		newGotoCmd(app, flags),
	)

	return root
}

// formatter builds a Formatter from the stored preferences and any flag
// overrides.
func (d *displayFlags) formatter(app *App) *formatter.Formatter {
	state := app.Store.State()
	lang, theme := state.Language, state.Theme
	if d.lang != "" {
		lang = domain.Language(d.lang)
	}
	if d.theme != "" {
		theme = domain.Theme(d.theme)
	}
	return formatter.New(theme, lang).WithClock(app.now)
}

func printToasts(cmd *cobra.Command, f *formatter.Formatter, toasts []domain.Toast) {
	if out := f.FormatToasts(toasts); out != "" {
		fmt.Fprint(cmd.ErrOrStderr(), out)
	}
}

// langValue is a pflag.Value accepting only the supported languages.
type langValue string

func (v *langValue) String() string { return string(*v) }
func (v *langValue) Type() string   { return "lang" }
func (v *langValue) Set(s string) error {
	switch domain.Language(s) {
	case domain.LangEnglish, domain.LangArabic:
		*v = langValue(s)
		return nil
	}
	return fmt.Errorf("unsupported language %q (want en or ar)", s)
}

type themeValue string

func (v *themeValue) String() string { return string(*v) }
func (v *themeValue) Type() string   { return "theme" }
func (v *themeValue) Set(s string) error {
	switch domain.Theme(s) {
	case domain.ThemeLight, domain.ThemeDark:
		*v = themeValue(s)
		return nil
	}
	return fmt.Errorf("unsupported theme %q (want light or dark)", s)
}

var (
	_ pflag.Value = (*langValue)(nil)
	_ pflag.Value = (*themeValue)(nil)
)
