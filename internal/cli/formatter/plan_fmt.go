package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
)

const planBarWidth = 20

// FormatPlanOverview lists every week with its completion.
func (f *Formatter) FormatPlanOverview(s store.AppState) string {
	if s.Plan == nil || len(s.Plan.Weeks) == 0 {
		return f.FormatNoPlan()
	}
	headers := []string{"WEEK", "PHASE", "TITLE", "PROGRESS"}
	rows := make([][]string, 0, len(s.Plan.Weeks))
	for _, w := range s.Plan.Weeks {
		marker := "  "
		if w.Week == s.Progress.CurrentWeek {
			marker = f.Header.Render("▸ ")
		}
		rows = append(rows, []string{
			marker + fmt.Sprintf("%d", w.Week),
			fmt.Sprintf("%d", w.Phase),
			f.Bold.Render(f.T(w.Title)),
			f.RenderProgress(s.WeekProgress(w), planBarWidth),
		})
	}

	var b strings.Builder
	b.WriteString(f.RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall %s\n", f.RenderProgress(s.OverallProgress(), planBarWidth)))
	return f.RenderBox("Learning plan", b.String())
}

// FormatNoPlan is shown when the curriculum could not be loaded.
func (f *Formatter) FormatNoPlan() string {
	return f.RenderBox("Welcome", strings.Join([]string{
		"No learning plan is loaded yet.",
		f.Dim.Render("Put your plan.json in the data directory or set PROGRESSMATE_PLAN."),
	}, "\n"))
}

// FormatWeek shows the objective and a progress line per day.
func (f *Formatter) FormatWeek(s store.AppState, w *domain.Week) string {
	var b strings.Builder
	b.WriteString(f.Bold.Render(f.T(w.Title)) + "\n")
	if obj := f.T(w.Objective); obj != "" {
		b.WriteString(f.Dim.Render(obj) + "\n")
	}
	b.WriteString("\n")

	headers := []string{"DAY", "TOPIC", "TASKS", "TIME", "PROGRESS"}
	rows := make([][]string, 0, len(w.Days))
	for _, d := range w.Days {
		marker := "  "
		if w.Week == s.Progress.CurrentWeek && d.Key == s.Progress.CurrentDay {
			marker = f.Header.Render("▸ ")
		}
		done := 0
		for _, t := range d.Tasks {
			if s.IsTaskCompleted(t.ID) {
				done++
			}
		}
		rows = append(rows, []string{
			marker + f.T(d.Day),
			f.T(d.Topic),
			fmt.Sprintf("%d/%d", done, len(d.Tasks)),
			FormatMinutes(d.TotalMinutes()),
			f.RenderProgress(s.DayProgress(d), 10),
		})
	}
	b.WriteString(f.RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Week %s\n", f.RenderProgress(s.WeekProgress(*w), planBarWidth)))
	return f.RenderBox(fmt.Sprintf("Week %d", w.Week), b.String())
}

// FormatDay shows the tasks, resources and reflection prompt of a day.
func (f *Formatter) FormatDay(s store.AppState, w *domain.Week, d *domain.Day) string {
	var b strings.Builder
	b.WriteString(f.Bold.Render(f.T(d.Topic)) + "\n\n")

	b.WriteString(f.HeaderLine("Tasks") + "\n")
	for _, t := range d.Tasks {
		b.WriteString(f.FormatTaskLine(s, t) + "\n")
	}

	if len(d.Resources) > 0 {
		b.WriteString("\n" + f.HeaderLine("Resources") + "\n")
		for _, r := range d.Resources {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				f.Purple.Render(string(r.Type)), r.Title, f.Dim.Render(r.URL)))
		}
	}

	if title := f.T(d.NotesPrompt.Title); title != "" || len(d.NotesPrompt.Points) > 0 {
		b.WriteString("\n" + f.HeaderLine("Reflect") + "\n")
		if title != "" {
			b.WriteString(title + "\n")
		}
		for _, p := range d.NotesPrompt.Points {
			b.WriteString("  • " + f.T(p) + "\n")
		}
	}

	if e, ok := s.JournalEntryFor(w.Week, d.Key); ok {
		b.WriteString("\n" + f.Dim.Render(fmt.Sprintf("Journal written %s", e.Date)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Day %s", f.RenderProgress(s.DayProgress(*d), planBarWidth)))
	return f.RenderBox(fmt.Sprintf("Week %d · %s", w.Week, f.T(d.Day)), b.String())
}

// FormatTaskLine renders one task with its checkbox, type, duration and
// recorded time.
func (f *Formatter) FormatTaskLine(s store.AppState, t domain.Task) string {
	done := s.IsTaskCompleted(t.ID)
	desc := f.T(t.Description)
	if done {
		desc = f.Dim.Render(desc)
	}
	line := fmt.Sprintf("%s %s %s %s",
		f.Checkbox(done),
		f.TaskTypeStyle(t.Type).Render(fmt.Sprintf("%-12s", t.Type)),
		desc,
		f.Dim.Render(fmt.Sprintf("(%s · %s)", FormatMinutes(t.Duration), t.ID)),
	)
	if spent := s.TimeSpentOn(t.ID); spent > 0 {
		line += " " + f.Green.Render(FormatMinutes(spent)+" logged")
	}
	return line
}
