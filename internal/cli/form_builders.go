package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/progressmate/internal/cli/formatter"
	"github.com/alexanderramin/progressmate/internal/domain"
)

// huhTheme styles forms with the accent colors of a palette.
func huhTheme(p formatter.Palette) *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(p.Header).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(p.Green)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Header).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Header)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.Dim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.Dim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// noteFields backs the note form. Tags are comma separated.
type noteFields struct {
	title   string
	content string
	tags    string
	taskID  string
}

func noteForm(p formatter.Palette, fields *noteFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fields.title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Tags").
				Description("comma separated, optional").
				Placeholder("recon, tools").
				Value(&fields.tags),
			huh.NewInput().
				Title("Task ID").
				Description("link the note to a plan task, optional").
				Placeholder("w1-sat-t1").
				Value(&fields.taskID),
			huh.NewText().
				Title("Content").
				Description("markdown").
				Lines(10).
				Value(&fields.content).
				Validate(validateRequired),
		),
	).WithTheme(huhTheme(p)).WithShowHelp(false)
}

// journalForm asks for the reflection of one day, showing its prompt.
func journalForm(p formatter.Palette, prompt string, points []string, content *string) *huh.Form {
	desc := strings.Join(points, "\n")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(prompt).
				Description(desc).
				Lines(12).
				Value(content).
				Validate(validateRequired),
		),
	).WithTheme(huhTheme(p)).WithShowHelp(false)
}

type skillFields struct {
	name        string
	category    string
	proficiency string
}

func skillForm(p formatter.Palette, fields *skillFields) *huh.Form {
	levels := make([]string, len(domain.ProficiencyLevels))
	for i, l := range domain.ProficiencyLevels {
		levels[i] = string(l)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Skill").
				Value(&fields.name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(domain.SkillCategories...)...).
				Value(&fields.category),
			huh.NewSelect[string]().
				Title("Proficiency").
				Options(huh.NewOptions(levels...)...).
				Value(&fields.proficiency),
		),
	).WithTheme(huhTheme(p)).WithShowHelp(false)
}

// splitTags turns "a, b,,c" into [a b c].
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return domain.NormalizeTags(strings.Split(s, ","))
}
