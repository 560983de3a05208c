package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// Palette is the set of colors one theme renders with.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox dark and light palettes.
var (
	DarkPalette = Palette{
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	}
	LightPalette = Palette{
		Green:  lipgloss.Color("#427b58"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Header: lipgloss.Color("#af3a03"),
	}
)

// PaletteFor returns the palette of a theme. Unknown themes render light.
func PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// Styles are the lipgloss styles derived from a Palette.
type Styles struct {
	Palette Palette
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Red     lipgloss.Style
	Blue    lipgloss.Style
	Purple  lipgloss.Style
	Dim     lipgloss.Style
	Fg      lipgloss.Style
	Header  lipgloss.Style
	Bold    lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,
		Green:   lipgloss.NewStyle().Foreground(p.Green),
		Yellow:  lipgloss.NewStyle().Foreground(p.Yellow),
		Red:     lipgloss.NewStyle().Foreground(p.Red),
		Blue:    lipgloss.NewStyle().Foreground(p.Blue),
		Purple:  lipgloss.NewStyle().Foreground(p.Purple),
		Dim:     lipgloss.NewStyle().Foreground(p.Dim),
		Fg:      lipgloss.NewStyle().Foreground(p.Fg),
		Header:  lipgloss.NewStyle().Foreground(p.Header).Bold(true),
		Bold:    lipgloss.NewStyle().Foreground(p.Fg).Bold(true),
	}
}

// TaskTypeStyle colors a task type badge.
func (s Styles) TaskTypeStyle(t domain.TaskType) lipgloss.Style {
	switch t {
	case domain.TaskBlueTeam:
		return s.Blue
	case domain.TaskRedTeam:
		return s.Red
	case domain.TaskPurpleTeam:
		return s.Purple
	case domain.TaskPractical:
		return s.Green
	case domain.TaskCareer, domain.TaskSoftSkills:
		return s.Yellow
	default:
		return s.Dim
	}
}

// SeverityIndicator returns the colored icon of a toast severity.
func (s Styles) SeverityIndicator(sev domain.ToastSeverity) string {
	switch sev {
	case domain.ToastSuccess:
		return s.Green.Render("✔")
	case domain.ToastError:
		return s.Red.Render("✖")
	case domain.ToastWarning:
		return s.Yellow.Render("▲")
	default:
		return s.Blue.Render("●")
	}
}

// HeaderLine renders a section header with an underline.
func (s Styles) HeaderLine(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", s.Header.Render(upper), s.Dim.Render(line))
}
