package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/service"
	"github.com/alexanderramin/progressmate/internal/settings"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/alexanderramin/progressmate/internal/testutil"
	"github.com/alexanderramin/progressmate/internal/toast"
)

var testNow = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

// testApp wires a full App around an in-memory store holding a two-week
// plan. Preferences are written to a temp settings file.
func testApp(t *testing.T) *App {
	t.Helper()
	st := store.New(store.InitialState())
	st.Dispatch(store.SetPlan{Plan: testutil.NewTestPlan(2)})
	return wireApp(t, st)
}

// testAppNoPlan is testApp without a curriculum.
func testAppNoPlan(t *testing.T) *App {
	t.Helper()
	return wireApp(t, store.New(store.InitialState()))
}

func wireApp(t *testing.T, st *store.Store) *App {
	t.Helper()
	toasts := toast.New(st)
	t.Cleanup(toasts.Close)
	clock := func() time.Time { return testNow }

	return &App{
		Store:   st,
		Tasks:   service.NewTaskService(st, toasts),
		Prefs:   service.NewPreferenceService(st, filepath.Join(t.TempDir(), settings.FileName), nil),
		Notes:   service.NewNoteService(st, toasts, clock),
		Journal: service.NewJournalService(st, toasts, clock),
		Skills:  service.NewSkillService(st, toasts),
		Focus:   service.NewFocusService(st, toasts),
		Status:  service.NewStatusService(st, clock),
		Pomodoro: pomodoro.Durations{
			Work:       2 * time.Minute,
			ShortBreak: time.Minute,
			LongBreak:  3 * time.Minute,
		},
		TickInterval:  time.Millisecond,
		IsInteractive: func() bool { return false },
		Now:           clock,
	}
}

// executeCmd runs a cobra command and captures stdout and stderr separately.
func executeCmd(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// --- Plan navigation ---

func TestRootCmd_ShowsPlanOverview(t *testing.T) {
	app := testApp(t)
	out, _, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "LEARNING PLAN")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Overall")
}

func TestRootCmd_NoPlan(t *testing.T) {
	out, _, err := executeCmd(t, testAppNoPlan(t))
	require.NoError(t, err)
	assert.Contains(t, out, "No learning plan is loaded yet.")
}

func TestRootCmd_InvalidLangFlag(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "--lang", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestRootCmd_ArabicFlag(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "--lang", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "الأسبوع 1")
}

func TestWeekCmd_DefaultsToCurrentWeek(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "week")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK 1")
}

func TestWeekCmd_UnknownWeek(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "week", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week 9 is not in the plan")
}

func TestDayCmd_ListsTasks(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "day", "2", "sun")
	require.NoError(t, err)
	assert.Contains(t, out, "w2-sun-t1")
	assert.Contains(t, out, "Reading for sun")
}

func TestGotoCmd_MovesCursor(t *testing.T) {
	app := testApp(t)
	out, _, err := executeCmd(t, app, "goto", "2", "sun")
	require.NoError(t, err)
	assert.Contains(t, out, "Now at week 2, sun")

	p := app.Store.State().Progress
	assert.Equal(t, 2, p.CurrentWeek)
	assert.Equal(t, "sun", p.CurrentDay)
}

func TestGotoCmd_NoPlan(t *testing.T) {
	_, _, err := executeCmd(t, testAppNoPlan(t), "goto", "1")
	assert.ErrorIs(t, err, errNoPlan)
}

// --- Tasks ---

func TestTaskDoneCmd_CompletesAndToasts(t *testing.T) {
	app := testApp(t)
	_, errOut, err := executeCmd(t, app, "task", "done", "w1-sat-t1")
	require.NoError(t, err)

	s := app.Store.State()
	assert.True(t, s.IsTaskCompleted("w1-sat-t1"))
	assert.Equal(t, 30, s.TimeSpentOn("w1-sat-t1"))
	assert.Contains(t, errOut, "Task completed!")
}

func TestTaskDoneCmd_UnknownTask(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "task", "done", "w9-mon-t1")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTaskToggleCmd_RoundTrip(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "task", "toggle", "w1-sun-t2")
	require.NoError(t, err)
	assert.True(t, app.Store.State().IsTaskCompleted("w1-sun-t2"))

	_, _, err = executeCmd(t, app, "task", "toggle", "w1-sun-t2")
	require.NoError(t, err)
	assert.False(t, app.Store.State().IsTaskCompleted("w1-sun-t2"))
	assert.Equal(t, 0, app.Store.State().TimeSpentOn("w1-sun-t2"))
}

func TestTaskLogCmd(t *testing.T) {
	app := testApp(t)
	out, _, err := executeCmd(t, app, "task", "log", "w1-sat-t1", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 15 min on w1-sat-t1 (total 15 min)")
	assert.False(t, app.Store.State().IsTaskCompleted("w1-sat-t1"))
}

func TestTaskLogCmd_InvalidMinutes(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "task", "log", "w1-sat-t1", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minutes must be a number")

	_, _, err = executeCmd(t, testApp(t), "task", "log", "w1-sat-t1", "-5")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestTaskShowCmd_ListsLinkedNotes(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "note", "add", "--title", "Nmap flags", "--content", "-sS", "--task", "w1-sat-t1")
	require.NoError(t, err)

	out, _, err := executeCmd(t, app, "task", "show", "w1-sat-t1")
	require.NoError(t, err)
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Nmap flags")
}

// --- Notes ---

func TestNoteCmd_Lifecycle(t *testing.T) {
	app := testApp(t)

	out, errOut, err := executeCmd(t, app, "note", "add", "--title", "Ports", "--content", "22 is ssh", "--tags", "net, Recon")
	require.NoError(t, err)
	assert.Contains(t, out, "Created note Ports")
	assert.Contains(t, errOut, "Note created successfully")

	notes := app.Store.State().Progress.Notes
	require.Len(t, notes, 1)
	id := notes[0].ID
	assert.Equal(t, []string{"net", "Recon"}, notes[0].Tags)

	out, _, err = executeCmd(t, app, "note", "list", "--search", "ssh")
	require.NoError(t, err)
	assert.Contains(t, out, "Ports")

	_, _, err = executeCmd(t, app, "note", "edit", id[:8], "--title", "Common ports")
	require.NoError(t, err)
	n, ok := app.Store.State().FindNote(id)
	require.True(t, ok)
	assert.Equal(t, "Common ports", n.Title)
	assert.Equal(t, "22 is ssh", n.Content, "unset flags keep the current value")

	out, _, err = executeCmd(t, app, "note", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "COMMON PORTS")

	_, _, err = executeCmd(t, app, "note", "rm", id)
	require.NoError(t, err)
	assert.Empty(t, app.Store.State().Progress.Notes)
}

func TestNoteAddCmd_MissingFieldsNonInteractive(t *testing.T) {
	app := testApp(t)
	_, errOut, err := executeCmd(t, app, "note", "add", "--title", "Only a title")
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Empty(t, app.Store.State().Progress.Notes)
	// Toasts are printed only after a successful run.
	assert.Empty(t, errOut)
}

func TestNoteListCmd_Empty(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes yet.")
}

func TestNoteShowCmd_UnknownID(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "note", "show", "deadbeef")
	require.Error(t, err)
}

// --- Journal ---

func TestJournalCmd_WriteThenUpdate(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "journal", "write", "Learned", "about", "TCP")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved journal for week 1, sat (2026-03-07)")

	out, _, err = executeCmd(t, app, "journal", "write", "--day", "sat", "Rewrote it")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated journal for week 1, sat")

	entries := app.Store.State().Progress.JournalEntries
	require.Len(t, entries, 1)
	assert.Equal(t, "Rewrote it", entries[0].Content)

	out, _, err = executeCmd(t, app, "journal", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Rewrote")

	out, _, err = executeCmd(t, app, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Rewrote it")
}

func TestJournalCmd_EmptyContent(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "journal", "write")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestJournalCmd_UnknownDay(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "journal", "write", "--week", "1", "--day", "fri", "text")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestJournalShowCmd_Missing(t *testing.T) {
	out, _, err := executeCmd(t, testApp(t), "journal", "show", "2", "sun")
	require.NoError(t, err)
	assert.Contains(t, out, "No journal entry for week 2, sun.")
}

// --- Skills ---

func TestSkillCmd_SeedSetList(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "skill", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 20 skills")

	out, _, err = executeCmd(t, app, "skill", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	out, _, err = executeCmd(t, app, "skill", "set", "Cryptography", "advanced", "--notes", "read Serious Cryptography")
	require.NoError(t, err)
	assert.Contains(t, out, "Cryptography is now Advanced")

	sk, ok := app.Store.State().FindSkill("skill-10")
	require.True(t, ok)
	assert.Equal(t, domain.ProficiencyAdvanced, sk.Proficiency)
	assert.Equal(t, "read Serious Cryptography", sk.Notes)

	out, _, err = executeCmd(t, app, "skill", "list", "--category", "Technical")
	require.NoError(t, err)
	assert.Contains(t, out, "Cryptography")
	assert.NotContains(t, out, "Network Security")
}

func TestSkillSetCmd_NothingToChange(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "skill", "seed")
	require.NoError(t, err)

	_, _, err = executeCmd(t, app, "skill", "set", "skill-0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestSkillSetCmd_InvalidLevel(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "skill", "seed")
	require.NoError(t, err)

	_, _, err = executeCmd(t, app, "skill", "set", "skill-0", "guru")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestSkillAddCmd(t *testing.T) {
	app := testApp(t)
	out, _, err := executeCmd(t, app, "skill", "add", "--name", "Reverse Engineering", "--category", "Analysis", "--level", "intermediate")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Reverse Engineering")

	skills := app.Store.State().Progress.Skills
	require.Len(t, skills, 1)
	assert.Equal(t, domain.ProficiencyIntermediate, skills[0].Proficiency)
}

func TestSkillAddCmd_MissingName(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "skill", "add", "--category", "Analysis")
	assert.ErrorIs(t, err, service.ErrValidation)
}

// --- Stats and config ---

func TestStatsCmd(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "task", "done", "w1-sat-t1")
	require.NoError(t, err)

	out, _, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "ACHIEVEMENTS")
	assert.Contains(t, out, "1/8")
	assert.Contains(t, out, "Blue Team")
}

func TestStatsCmd_NoPlan(t *testing.T) {
	out, _, err := executeCmd(t, testAppNoPlan(t), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No learning plan loaded.")
}

func TestConfigCmd_LangAndTheme(t *testing.T) {
	app := testApp(t)

	out, _, err := executeCmd(t, app, "config", "lang", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "Language set to ar")
	assert.Equal(t, domain.LangArabic, app.Store.State().Language)

	out, _, err = executeCmd(t, app, "config", "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark")
	assert.Equal(t, domain.ThemeDark, app.Store.State().Theme)

	out, _, err = executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "02:00")
}

func TestConfigCmd_RejectsUnknownValues(t *testing.T) {
	app := testApp(t)
	_, _, err := executeCmd(t, app, "config", "lang", "fr")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, _, err = executeCmd(t, app, "config", "theme", "solarized")
	assert.ErrorIs(t, err, service.ErrValidation)
}

// --- Pomodoro ---

func TestPomodoroCmd_PlainLogsFocusTime(t *testing.T) {
	app := testApp(t)
	out, errOut, err := executeCmd(t, app, "pomodoro", "--plain", "w1-sat-t1")
	require.NoError(t, err)

	assert.Contains(t, out, "Focus Time  02:00 left")
	assert.Contains(t, out, "Focus Time finished. Up next: Short Break")
	assert.Equal(t, 2, app.Store.State().TimeSpentOn("w1-sat-t1"))
	assert.False(t, app.Store.State().IsTaskCompleted("w1-sat-t1"))
	assert.Contains(t, errOut, "Focus session complete: 2 min logged")
}

func TestPomodoroCmd_UnboundLogsNothing(t *testing.T) {
	app := testApp(t)
	out, _, err := executeCmd(t, app, "pomodoro", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "finished")
	assert.Empty(t, app.Store.State().Progress.TimeSpent)
}

func TestPomodoroCmd_UnknownTask(t *testing.T) {
	_, _, err := executeCmd(t, testApp(t), "pomodoro", "--plain", "w9-mon-t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the plan")
}
