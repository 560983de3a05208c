package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
)

const journalPreviewLen = 48

func (f *Formatter) FormatJournalList(entries []domain.JournalEntry) string {
	if len(entries) == 0 {
		return f.Dim.Render("No journal entries yet.") + "\n"
	}
	headers := []string{"DATE", "WEEK", "DAY", "ENTRY"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date,
			fmt.Sprintf("%d", e.Week),
			e.Day,
			preview(e.Content, journalPreviewLen),
		})
	}
	return f.RenderTable(headers, rows)
}

func (f *Formatter) FormatJournalEntry(e domain.JournalEntry) string {
	header := f.Dim.Render(fmt.Sprintf("%s · week %d · %s", e.Date, e.Week, e.Day))
	return f.RenderBox("Journal", header+"\n\n"+f.RenderMarkdown(e.Content))
}

// preview returns the first line of s cut to n runes.
func preview(s string, n int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	r := []rune(line)
	if len(r) <= n {
		return line
	}
	return string(r[:n-1]) + "…"
}
