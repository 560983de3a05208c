package pomodoro

import (
	"context"
	"sync"
	"time"
)

// EventType identifies what changed in a Runner.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
)

// Event is a Runner update for observers.
type Event struct {
	Type       EventType
	State      State
	Completion *Completion
	At         time.Time
}

// RunnerConfig contains runtime options for a Runner.
type RunnerConfig struct {
	// TickInterval is the wall-clock time between ticks. Defaults to one second.
	TickInterval time.Duration
}

// Runner drives a State from a ticker. The ticker goroutine only exists while
// the timer is running.
type Runner struct {
	mu         sync.Mutex
	state      State
	options    RunnerConfig
	events     []chan Event
	onComplete func(Completion)
	cancel     context.CancelFunc
	closed     bool
}

// NewRunner creates a stopped Runner starting from initial.
func NewRunner(initial State, options RunnerConfig) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = Tick
	}
	return &Runner{state: initial, options: options}
}

// OnComplete sets a hook invoked, outside the lock, whenever an interval
// completes.
func (r *Runner) OnComplete(fn func(Completion)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onComplete = fn
}

// Subscribe registers a new observer channel. Sends never block: a slow
// observer misses events.
func (r *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(ch)
		return ch
	}
	r.events = append(r.events, ch)
	return ch
}

// State returns the current snapshot.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) Start() State {
	return r.apply(State.Start)
}

func (r *Runner) Pause() State {
	return r.apply(State.Pause)
}

func (r *Runner) Stop() State {
	return r.apply(State.Stop)
}

func (r *Runner) Reset() State {
	return r.apply(State.Reset)
}

func (r *Runner) SwitchMode(m Mode) State {
	return r.apply(func(s State) State { return s.SwitchMode(m) })
}

func (r *Runner) Bind(taskID string) State {
	return r.apply(func(s State) State { return s.Bind(taskID) })
}

// Close stops the ticker and closes every observer channel. The Runner
// ignores further commands.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.stopTickerLocked()
	for _, ch := range r.events {
		close(ch)
	}
	r.events = nil
}

func (r *Runner) apply(fn func(State) State) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return r.state
	}
	r.state = fn(r.state)
	r.syncTickerLocked()
	r.emitLocked(Event{Type: EventStateChange, State: r.state, At: time.Now()})
	return r.state
}

// syncTickerLocked starts or stops the ticker goroutine to match Running.
func (r *Runner) syncTickerLocked() {
	if !r.state.Running {
		r.stopTickerLocked()
		return
	}
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go r.run(ctx)
}

func (r *Runner) stopTickerLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Runner) run(ctx context.Context) {
	ticker := time.NewTicker(r.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !r.tick(ctx, now) {
				return
			}
		}
	}
}

// tick advances the state once and reports whether the loop should continue.
func (r *Runner) tick(ctx context.Context, now time.Time) bool {
	r.mu.Lock()
	if ctx.Err() != nil {
		r.mu.Unlock()
		return false
	}

	next, done := r.state.Tick()
	r.state = next
	if done == nil {
		r.emitLocked(Event{Type: EventTick, State: next, At: now})
		r.mu.Unlock()
		return true
	}

	r.stopTickerLocked()
	r.emitLocked(Event{Type: EventComplete, State: next, Completion: done, At: now})
	hook := r.onComplete
	r.mu.Unlock()

	if hook != nil {
		hook(*done)
	}
	return false
}

func (r *Runner) emitLocked(event Event) {
	for _, ch := range r.events {
		select {
		case ch <- event:
		default:
		}
	}
}
