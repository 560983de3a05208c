package formatter

import (
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// FormatSkills renders skills grouped under their category, in the order
// given.
func (f *Formatter) FormatSkills(skills []domain.Skill) string {
	if len(skills) == 0 {
		return f.Dim.Render("No skills tracked. Run `progressmate skill seed` to start from the default set.") + "\n"
	}
	var b strings.Builder
	category := ""
	for _, sk := range skills {
		if sk.Category != category {
			if category != "" {
				b.WriteString("\n")
			}
			category = sk.Category
			b.WriteString(f.HeaderLine(category) + "\n")
		}
		b.WriteString(f.FormatSkillLine(sk) + "\n")
	}
	return b.String()
}

// FormatSkillLine renders "name  ●●○○ Intermediate  id".
func (f *Formatter) FormatSkillLine(sk domain.Skill) string {
	line := f.Bold.Render(sk.Name) + "  " + f.ProficiencyMeter(sk.Proficiency) + "  " + f.TruncID(sk.ID)
	if sk.Notes != "" {
		line += "\n    " + f.Dim.Render(sk.Notes)
	}
	return line
}

func (f *Formatter) ProficiencyMeter(p domain.Proficiency) string {
	rank := p.Rank()
	total := len(domain.ProficiencyLevels)
	meter := strings.Repeat("●", rank) + strings.Repeat("○", total-rank)
	style := f.Dim
	switch {
	case rank >= 4:
		style = f.Purple
	case rank == 3:
		style = f.Green
	case rank == 2:
		style = f.Yellow
	}
	return style.Render(meter) + " " + string(p)
}
