// Package teatest runs a bubbletea model in-process for tests.
//
// A Driver owns the model and feeds it messages one at a time. Each Cmd the
// model returns is evaluated on the spot and its message fed back, until the
// chain ends. Timer Cmds such as tea.Tick never finish inside the wait
// window and are dropped; tests advance clocks by sending tick messages.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxChain bounds how many Cmds a single Send may follow.
const maxChain = 100

// cmdWait is how long a Cmd may run before it counts as a timer.
const cmdWait = 10 * time.Millisecond

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that the model returned tea.Quit. Later sends are
	// ignored, as a real program would have exited.
	Quitting bool
}

// Option adjusts a Driver before the first message.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg of w by h.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit follows the Cmd chain started by the model's Init.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.follow(d.Model.Init(), 0)
}

func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.follow(cmd, 0)
}

// SendN delivers msg n times or until the model quits.
func (d *Driver) SendN(msg tea.Msg, n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		if d.Quitting {
			return
		}
		d.Send(msg)
	}
}

// PressKey types the single rune r.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) follow(cmd tea.Cmd, hops int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if hops >= maxChain {
		d.T.Logf("teatest: gave up after %d chained commands", maxChain)
		return
	}

	switch msg := run(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.follow(sub, hops+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.follow(next, hops+1)
	}
}

// run evaluates cmd, returning nil when it outlasts cmdWait.
func run(cmd tea.Cmd) tea.Msg {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	timer := time.NewTimer(cmdWait)
	defer timer.Stop()
	select {
	case msg := <-out:
		return msg
	case <-timer.C:
		return nil
	}
}
