package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// FormatNoteList renders notes as a table, newest first as given.
func (f *Formatter) FormatNoteList(notes []domain.Note) string {
	if len(notes) == 0 {
		return f.Dim.Render("No notes yet.") + "\n"
	}
	headers := []string{"ID", "TITLE", "TAGS", "TASK", "UPDATED"}
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		task := f.Dim.Render("--")
		if n.TaskID != "" {
			task = n.TaskID
		}
		rows = append(rows, []string{
			f.TruncID(n.ID),
			f.Bold.Render(n.Title),
			f.FormatTags(n.Tags),
			task,
			f.Ago(n.UpdatedAt),
		})
	}
	return f.RenderTable(headers, rows)
}

// FormatNote renders a full note with its markdown body.
func (f *Formatter) FormatNote(n domain.Note) string {
	var b strings.Builder
	meta := []string{fmt.Sprintf("id %s", n.ID), fmt.Sprintf("updated %s", f.Ago(n.UpdatedAt))}
	if n.TaskID != "" {
		meta = append(meta, "task "+n.TaskID)
	}
	b.WriteString(f.Dim.Render(strings.Join(meta, " · ")) + "\n")
	if len(n.Tags) > 0 {
		b.WriteString(f.FormatTags(n.Tags) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(f.RenderMarkdown(n.Content))
	return f.RenderBox(n.Title, b.String())
}

func (f *Formatter) FormatTags(tags []string) string {
	if len(tags) == 0 {
		return f.Dim.Render("--")
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = f.Purple.Render("#" + t)
	}
	return strings.Join(out, " ")
}
