package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/progressmate/internal/service"
)

const statsBarWidth = 16

// FormatStats renders the achievements overview.
func (f *Formatter) FormatStats(r *service.StatusReport) string {
	var b strings.Builder
	sum := r.Summary

	b.WriteString(fmt.Sprintf("Overall    %s\n", f.RenderProgress(sum.OverallProgress, statsBarWidth)))
	b.WriteString(fmt.Sprintf("Tasks      %s\n", f.Bold.Render(fmt.Sprintf("%d/%d", sum.CompletedTasks, sum.TotalTasks))))
	b.WriteString(fmt.Sprintf("Learning   %s\n", f.Bold.Render(FormatHours(sum.TotalLearningHours))))
	b.WriteString(fmt.Sprintf("Streak     %s\n", f.Bold.Render(fmt.Sprintf("%d day(s)", sum.CurrentStreak))))
	b.WriteString(fmt.Sprintf("Notes      %d   Journal %d\n", sum.NotesCount, sum.JournalEntriesCount))

	if !r.PlanReady {
		b.WriteString("\n" + f.Yellow.Render("No learning plan loaded.") + "\n")
		return f.RenderBox("Achievements", b.String())
	}

	b.WriteString("\n" + f.HeaderLine("By type") + "\n")
	rows := make([][]string, 0, len(r.ByType))
	for _, tp := range r.ByType {
		if tp.Total == 0 {
			continue
		}
		rows = append(rows, []string{
			f.TaskTypeStyle(tp.Type).Render(string(tp.Type)),
			fmt.Sprintf("%d/%d", tp.Completed, tp.Total),
			f.RenderProgress(tp.Percent(), 10),
		})
	}
	b.WriteString(f.RenderTable([]string{"TYPE", "DONE", "PROGRESS"}, rows))

	b.WriteString("\n" + f.HeaderLine("By week") + "\n")
	rows = rows[:0]
	for _, w := range r.Weeks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.Week),
			f.T(w.Title),
			fmt.Sprintf("%d/%d", w.Done, w.Total),
			f.RenderProgress(w.Progress, 10),
		})
	}
	b.WriteString(f.RenderTable([]string{"WEEK", "TITLE", "DONE", "PROGRESS"}, rows))

	return f.RenderBox("Achievements", b.String())
}
