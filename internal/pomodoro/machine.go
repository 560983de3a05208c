package pomodoro

import "time"

// Tick is the amount of time one call to State.Tick accounts for.
const Tick = time.Second

// State is a value-type snapshot of the timer. Every method returns a new
// State and leaves the receiver untouched.
type State struct {
	Mode                  Mode
	TimeLeft              time.Duration
	Running               bool
	CompletedWorkSessions int
	// TaskID is the task the timer is bound to, "" when unbound.
	TaskID    string
	Durations Durations
}

// Completion describes an interval that just ran out.
type Completion struct {
	Mode     Mode
	Next     Mode
	TaskID   string
	Duration time.Duration
	// Sessions is the completed work session count after this interval.
	Sessions int
}

// New returns a stopped timer at the start of a work interval.
func New(d Durations) State {
	d = d.withDefaults()
	return State{
		Mode:      ModeWork,
		TimeLeft:  d.Work,
		Durations: d,
	}
}

// Default returns New(DefaultDurations()).
func Default() State {
	return New(DefaultDurations())
}

// Full returns the full length of the current mode.
func (s State) Full() time.Duration {
	return s.Durations.Of(s.Mode)
}

// Start resumes counting. It has no effect once TimeLeft has reached 0.
func (s State) Start() State {
	if s.TimeLeft <= 0 {
		return s
	}
	s.Running = true
	return s
}

func (s State) Pause() State {
	s.Running = false
	return s
}

// Stop halts the timer and rewinds the current mode.
func (s State) Stop() State {
	s.Running = false
	s.TimeLeft = s.Full()
	return s
}

// Reset returns to a fresh work interval and clears the session count.
func (s State) Reset() State {
	s.Mode = ModeWork
	s.TimeLeft = s.Durations.Work
	s.Running = false
	s.CompletedWorkSessions = 0
	return s
}

// SwitchMode jumps to mode m with its full duration, stopped.
func (s State) SwitchMode(m Mode) State {
	s.Mode = m
	s.TimeLeft = s.Durations.Of(m)
	s.Running = false
	return s
}

// Bind attaches the timer to a task. Switching to a different task resets
// the timer; binding the same task again keeps it as is.
func (s State) Bind(taskID string) State {
	if s.TaskID == taskID {
		return s
	}
	s = s.Reset()
	s.TaskID = taskID
	return s
}

// Tick advances the timer by one second. While running with time left it
// counts down; a tick observed at zero completes the interval, stops the
// timer and loads the next mode. The returned Completion is non-nil only in
// that case.
func (s State) Tick() (State, *Completion) {
	if !s.Running {
		return s, nil
	}
	if s.TimeLeft > 0 {
		s.TimeLeft = max(s.TimeLeft-Tick, 0)
		return s, nil
	}

	done := Completion{Mode: s.Mode, TaskID: s.TaskID, Duration: s.Full()}
	s.Running = false
	if s.Mode == ModeWork {
		s.CompletedWorkSessions++
		if s.CompletedWorkSessions%SessionsPerLongBreak == 0 {
			s.Mode = ModeLongBreak
		} else {
			s.Mode = ModeShortBreak
		}
	} else {
		s.Mode = ModeWork
	}
	s.TimeLeft = s.Full()
	done.Next = s.Mode
	done.Sessions = s.CompletedWorkSessions
	return s, &done
}

// Progress returns the elapsed share of the current interval in [0, 1].
func (s State) Progress() float64 {
	full := s.Full()
	if full <= 0 {
		return 0
	}
	p := float64(full-s.TimeLeft) / float64(full)
	return min(max(p, 0), 1)
}
