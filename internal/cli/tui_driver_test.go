package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/teatest"
)

// TimerDriver wraps teatest.Driver with pomodoro-specific accessors.
type TimerDriver struct {
	*teatest.Driver
}

// NewTimerDriver builds the focus timer for app, optionally bound to a task.
func NewTimerDriver(t *testing.T, app *App, taskID string) *TimerDriver {
	t.Helper()
	initial := pomodoro.New(app.Pomodoro)
	if taskID != "" {
		initial = initial.Bind(taskID)
	}
	f := formatter.New(domain.ThemeDark, domain.LangEnglish)
	m := newPomodoroModel(context.Background(), app.Focus, f, initial, taskID)

	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()
	return &TimerDriver{Driver: d}
}

func (d *TimerDriver) model() pomodoroModel {
	d.T.Helper()
	m, ok := d.Model.(pomodoroModel)
	require.True(d.T, ok, "model is %T", d.Model)
	return m
}

func (d *TimerDriver) State() pomodoro.State {
	return d.model().state
}

// Tick delivers n timer ticks.
func (d *TimerDriver) Tick(n int) {
	d.T.Helper()
	d.SendN(tickMsg(time.Now()), n)
}

func TestTimer_StartsStopped(t *testing.T) {
	d := NewTimerDriver(t, testApp(t), "")

	s := d.State()
	assert.False(t, s.Running)
	assert.Equal(t, pomodoro.ModeWork, s.Mode)
	assert.Contains(t, d.View(), "FOCUS TIMER")
	assert.Contains(t, d.View(), "02:00")
	assert.Contains(t, d.View(), "(paused)")
}

func TestTimer_SpaceTogglesRunning(t *testing.T) {
	d := NewTimerDriver(t, testApp(t), "")

	d.PressSpace()
	assert.True(t, d.State().Running)
	assert.True(t, d.model().ticking)

	d.Tick(5)
	assert.Equal(t, 115*time.Second, d.State().TimeLeft)
	assert.Contains(t, d.View(), "01:55")

	d.PressSpace()
	assert.False(t, d.State().Running)

	// Ticks arriving after a pause do not move the clock.
	d.Tick(3)
	assert.Equal(t, 115*time.Second, d.State().TimeLeft)
	assert.False(t, d.model().ticking)
}

func TestTimer_CompletedWorkIntervalIsLogged(t *testing.T) {
	app := testApp(t)
	d := NewTimerDriver(t, app, "w1-sat-t1")

	d.PressSpace()
	// 120 ticks count down to zero; the next one completes the interval.
	d.Tick(121)

	s := d.State()
	assert.False(t, s.Running)
	assert.Equal(t, pomodoro.ModeShortBreak, s.Mode)
	assert.Equal(t, 1, s.CompletedWorkSessions)
	assert.Equal(t, 2, app.Store.State().TimeSpentOn("w1-sat-t1"))

	view := d.View()
	assert.Contains(t, view, "Short Break")
	assert.Contains(t, view, "Logged: 2m")
	assert.Contains(t, view, "Focus Time finished. Up next: Short Break")
}

func TestTimer_BreakCompletionLogsNothing(t *testing.T) {
	app := testApp(t)
	d := NewTimerDriver(t, app, "w1-sat-t1")

	d.PressKey('2')
	require.Equal(t, pomodoro.ModeShortBreak, d.State().Mode)
	require.Equal(t, time.Minute, d.State().TimeLeft)

	d.PressSpace()
	d.Tick(61)

	assert.Equal(t, pomodoro.ModeWork, d.State().Mode)
	assert.Equal(t, 0, app.Store.State().TimeSpentOn("w1-sat-t1"))
	assert.NotContains(t, d.View(), "Logged:")
}

func TestTimer_RecordFailureIsShown(t *testing.T) {
	d := NewTimerDriver(t, testApp(t), "w9-mon-t1")

	d.PressSpace()
	d.Tick(121)

	assert.Contains(t, d.View(), "Could not log focus time")
}

func TestTimer_StopAndReset(t *testing.T) {
	d := NewTimerDriver(t, testApp(t), "")

	d.PressSpace()
	d.Tick(10)
	d.PressKey('s')
	assert.False(t, d.State().Running)
	assert.Equal(t, 2*time.Minute, d.State().TimeLeft)

	d.PressKey('3')
	assert.Equal(t, pomodoro.ModeLongBreak, d.State().Mode)
	d.PressKey('r')
	assert.Equal(t, pomodoro.ModeWork, d.State().Mode)
	assert.Equal(t, 0, d.State().CompletedWorkSessions)
}

func TestTimer_Quit(t *testing.T) {
	d := NewTimerDriver(t, testApp(t), "")

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
