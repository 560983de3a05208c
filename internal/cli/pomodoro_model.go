package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/service"
)

// pomodoroKeys is the key map of the focus timer screen.
type pomodoroKeys struct {
	Toggle     key.Binding
	Stop       key.Binding
	Reset      key.Binding
	Work       key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Quit       key.Binding
}

func defaultPomodoroKeys() pomodoroKeys {
	return pomodoroKeys{
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Stop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Work:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "focus")),
		ShortBreak: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "short break")),
		LongBreak:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "long break")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pomodoroKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.Reset, k.Quit}
}

func (k pomodoroKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Stop, k.Reset},
		{k.Work, k.ShortBreak, k.LongBreak, k.Quit},
	}
}

// tickMsg advances the timer by one pomodoro.Tick.
type tickMsg time.Time

// recordedMsg reports the outcome of logging a completed interval.
type recordedMsg struct {
	completion pomodoro.Completion
	err        error
}

// pomodoroModel is the interactive focus timer. Timer state lives in a
// pomodoro.State value; completed work intervals are logged through the
// FocusService.
type pomodoroModel struct {
	ctx   context.Context
	focus service.FocusService
	f     *formatter.Formatter

	state     pomodoro.State
	taskLabel string
	ticking   bool
	interval  time.Duration

	bar  progress.Model
	keys pomodoroKeys
	help help.Model

	loggedMinutes int
	message       string
	quitting      bool
}

func newPomodoroModel(ctx context.Context, focus service.FocusService, f *formatter.Formatter, initial pomodoro.State, taskLabel string) pomodoroModel {
	bar := progress.New(
		progress.WithGradient(string(f.Palette.Red), string(f.Palette.Green)),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return pomodoroModel{
		ctx:       ctx,
		focus:     focus,
		f:         f,
		state:     initial,
		taskLabel: taskLabel,
		interval:  pomodoro.Tick,
		bar:       bar,
		keys:      defaultPomodoroKeys(),
		help:      help.New(),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m pomodoroModel) Init() tea.Cmd {
	return nil
}

func (m pomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-8, 60), 10)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.onTick()

	case recordedMsg:
		if msg.err != nil {
			m.message = "Could not log focus time: " + msg.err.Error()
			return m, nil
		}
		if msg.completion.Mode == pomodoro.ModeWork && msg.completion.TaskID != "" {
			m.loggedMinutes += int(msg.completion.Duration / time.Minute)
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m pomodoroModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.state.Running {
			m.state = m.state.Pause()
			return m, nil
		}
		m.state = m.state.Start()
		m.message = ""
		cmd := m.startTicking()
		return m, cmd
	case key.Matches(msg, m.keys.Stop):
		m.state = m.state.Stop()
	case key.Matches(msg, m.keys.Reset):
		m.state = m.state.Reset()
	case key.Matches(msg, m.keys.Work):
		m.state = m.state.SwitchMode(pomodoro.ModeWork)
	case key.Matches(msg, m.keys.ShortBreak):
		m.state = m.state.SwitchMode(pomodoro.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.state = m.state.SwitchMode(pomodoro.ModeLongBreak)
	}
	return m, nil
}

func (m pomodoroModel) onTick() (tea.Model, tea.Cmd) {
	next, done := m.state.Tick()
	m.state = next
	if done != nil {
		m.ticking = false
		m.message = fmt.Sprintf("%s finished. Up next: %s", done.Mode.Label(), done.Next.Label())
		return m, m.record(*done)
	}
	if !m.state.Running {
		m.ticking = false
		return m, nil
	}
	return m, m.tick()
}

// startTicking schedules the first tick unless a tick is already pending.
func (m *pomodoroModel) startTicking() tea.Cmd {
	if m.ticking || !m.state.Running {
		return nil
	}
	m.ticking = true
	return m.tick()
}

func (m pomodoroModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m pomodoroModel) record(c pomodoro.Completion) tea.Cmd {
	focus, ctx := m.focus, m.ctx
	return func() tea.Msg {
		return recordedMsg{completion: c, err: focus.RecordCompletion(ctx, c)}
	}
}

func (m pomodoroModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.f.Styles

	var b strings.Builder
	modeStyle := s.Red
	if m.state.Mode.IsBreak() {
		modeStyle = s.Green
	}
	b.WriteString(modeStyle.Bold(true).Render(m.state.Mode.Label()))
	if !m.state.Running {
		b.WriteString(s.Dim.Render("  (paused)"))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(formatter.FormatClock(m.state.TimeLeft)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.state.Progress()))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Sessions: %d", m.state.CompletedWorkSessions)
	if m.taskLabel != "" {
		fmt.Fprintf(&b, "  ·  Task: %s", m.taskLabel)
	}
	if m.loggedMinutes > 0 {
		fmt.Fprintf(&b, "  ·  Logged: %s", formatter.FormatMinutes(m.loggedMinutes))
	}
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(s.Yellow.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.f.RenderBox("Focus timer", b.String())
}
