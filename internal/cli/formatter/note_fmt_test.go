package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatNoteList(t *testing.T) {
	now := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	f := New(domain.ThemeLight, domain.LangEnglish).WithClock(func() time.Time { return now })
	n := testutil.NewTestNote("Nmap", "scan flags",
		testutil.WithNoteTags("recon"),
		testutil.WithNoteTask("w1-sat-t1"),
		testutil.WithNoteUpdatedAt(now.Add(-2*time.Hour)),
	)

	out := f.FormatNoteList([]domain.Note{n})
	assert.Contains(t, out, "Nmap")
	assert.Contains(t, out, "#recon")
	assert.Contains(t, out, "w1-sat-t1")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, n.ID[:8])

	assert.Contains(t, f.FormatNoteList(nil), "No notes yet.")
}

func TestFormatNote_RendersMarkdown(t *testing.T) {
	f := New(domain.ThemeLight, domain.LangEnglish)
	n := testutil.NewTestNote("Ports", "# Common ports\n\n- 22 ssh\n- 443 https")

	out := f.FormatNote(n)
	assert.Contains(t, out, "PORTS")
	assert.Contains(t, out, "Common")
	assert.Contains(t, out, "ssh")
	assert.NotContains(t, out, "# Common", "heading marker is rendered away")
}

func TestFormatJournal(t *testing.T) {
	f := New(domain.ThemeDark, domain.LangEnglish)
	e := testutil.NewTestJournalEntry(1, "sat", "2026-03-07", "Learned about subnetting today\nand more")

	list := f.FormatJournalList([]domain.JournalEntry{e})
	assert.Contains(t, list, "2026-03-07")
	assert.Contains(t, list, "Learned about subnetting today")
	assert.NotContains(t, list, "and more")

	full := f.FormatJournalEntry(e)
	assert.Contains(t, full, "week 1")
	assert.Contains(t, full, "and more")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "abcd…", preview("abcdefgh", 5))
	assert.Equal(t, "first", preview("  first\nsecond", 10))
}

func TestFormatSkills(t *testing.T) {
	f := New(domain.ThemeLight, domain.LangEnglish)
	out := f.FormatSkills([]domain.Skill{
		testutil.NewTestSkill("Cryptography", "Technical", domain.ProficiencyIntermediate),
		testutil.NewTestSkill("Security Tools", "Technical", domain.ProficiencyExpert),
	})

	assert.Contains(t, out, "TECHNICAL")
	assert.Contains(t, out, "●●○○ Intermediate")
	assert.Contains(t, out, "●●●● Expert")
	assert.Contains(t, f.FormatSkills(nil), "skill seed")
}

func TestFormatToasts(t *testing.T) {
	f := New(domain.ThemeLight, domain.LangEnglish)
	out := f.FormatToasts([]domain.Toast{
		{ID: "1", Message: "Task completed!", Severity: domain.ToastSuccess},
		{ID: "2", Message: "Careful", Severity: domain.ToastWarning},
	})
	assert.Contains(t, out, "✔ Task completed!")
	assert.Contains(t, out, "▲ Careful")
	assert.Empty(t, f.FormatToasts(nil))
}
