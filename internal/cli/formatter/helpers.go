package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// Formatter renders domain values for one theme and language.
type Formatter struct {
	Styles
	Lang  domain.Language
	Theme domain.Theme
	Width int
	now   func() time.Time
}

// New creates a Formatter. Width is the wrap width for markdown and boxes.
func New(theme domain.Theme, lang domain.Language) *Formatter {
	return &Formatter{
		Styles: NewStyles(PaletteFor(theme)),
		Lang:   lang,
		Theme:  theme,
		Width:  80,
		now:    time.Now,
	}
}

// WithClock fixes the reference time of relative timestamps.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	f.now = now
	return f
}

// T picks the rendition of t in the formatter's language, falling back to
// English when it is missing.
func (f *Formatter) T(t domain.BilingualText) string {
	return domain.CoalesceStr(t.In(f.Lang), t.EN)
}

// RenderBox wraps content in a rounded-border box with an optional title.
// Arabic output is right aligned.
func (f *Formatter) RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Palette.Dim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)
	if f.Lang.IsRTL() {
		boxStyle = boxStyle.Align(lipgloss.Right)
	}

	if title != "" {
		inner := f.Header.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// Ago returns a humanized relative timestamp such as "3 hours ago".
func (f *Formatter) Ago(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return humanize.RelTime(t, f.now(), "ago", "from now")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func (f *Formatter) TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return f.Dim.Render(id)
}

// FormatMinutes converts raw minutes into a short human form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders fractional hours with one decimal.
func FormatHours(h float64) string {
	return humanize.FtoaWithDigits(h, 1) + "h"
}

// FormatClock renders a duration as MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Checkbox renders a completion marker.
func (f *Formatter) Checkbox(done bool) string {
	if done {
		return f.Green.Render("[✔]")
	}
	return f.Dim.Render("[ ]")
}
