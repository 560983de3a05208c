package pomodoro

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortTimer() State {
	return New(Durations{Work: 3 * time.Second, ShortBreak: 2 * time.Second, LongBreak: 4 * time.Second})
}

func TestRunner_CompletesIntervalAndStops(t *testing.T) {
	r := NewRunner(shortTimer().Bind("task-1"), RunnerConfig{TickInterval: time.Millisecond})
	defer r.Close()

	var mu sync.Mutex
	var got []Completion
	r.OnComplete(func(c Completion) {
		mu.Lock()
		got = append(got, c)
		mu.Unlock()
	})

	r.Start()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	c := got[0]
	mu.Unlock()
	assert.Equal(t, ModeWork, c.Mode)
	assert.Equal(t, "task-1", c.TaskID)
	assert.Equal(t, 3*time.Second, c.Duration)

	s := r.State()
	assert.Equal(t, ModeShortBreak, s.Mode)
	assert.False(t, s.Running)
	assert.Equal(t, 1, s.CompletedWorkSessions)

	// The ticker goroutine is gone: state stays put.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, s, r.State())
}

func TestRunner_PauseHaltsTicking(t *testing.T) {
	r := NewRunner(New(Durations{Work: time.Hour}), RunnerConfig{TickInterval: time.Millisecond})
	defer r.Close()

	r.Start()
	require.Eventually(t, func() bool {
		return r.State().TimeLeft < time.Hour
	}, time.Second, time.Millisecond)

	paused := r.Pause()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused.TimeLeft, r.State().TimeLeft)
	assert.False(t, r.State().Running)
}

func TestRunner_EmitsEvents(t *testing.T) {
	r := NewRunner(shortTimer(), RunnerConfig{TickInterval: time.Millisecond})
	events := r.Subscribe(64)

	r.Start()
	var sawComplete bool
	timeout := time.After(2 * time.Second)
	for !sawComplete {
		select {
		case ev := <-events:
			if ev.Type == EventComplete {
				sawComplete = true
				require.NotNil(t, ev.Completion)
				assert.Equal(t, ModeShortBreak, ev.State.Mode)
			}
		case <-timeout:
			t.Fatal("no completion event")
		}
	}

	r.Close()
	for range events {
	}
	_, ok := <-events
	assert.False(t, ok)
}

func TestRunner_CommandsAfterCloseAreIgnored(t *testing.T) {
	r := NewRunner(shortTimer(), RunnerConfig{})
	r.Close()
	r.Close()

	s := r.Start()
	assert.False(t, s.Running)

	_, ok := <-r.Subscribe(1)
	assert.False(t, ok)
}

func TestRunner_SwitchModeAndReset(t *testing.T) {
	r := NewRunner(shortTimer(), RunnerConfig{TickInterval: time.Hour})
	defer r.Close()

	s := r.SwitchMode(ModeLongBreak)
	assert.Equal(t, ModeLongBreak, s.Mode)
	assert.Equal(t, 4*time.Second, s.TimeLeft)

	s = r.Reset()
	assert.Equal(t, ModeWork, s.Mode)
	assert.Equal(t, 3*time.Second, s.TimeLeft)

	s = r.Bind("task-2")
	assert.Equal(t, "task-2", s.TaskID)

	s = r.Start()
	assert.True(t, s.Running)
	s = r.Stop()
	assert.False(t, s.Running)
	assert.Equal(t, 3*time.Second, s.TimeLeft)
}
