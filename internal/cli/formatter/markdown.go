package formatter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/alexanderramin/progressmate/internal/domain"
)

var (
	mdMu       sync.Mutex
	mdRenderer = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders note and journal bodies with glamour using the
// standard style of the formatter's theme. On renderer failure the source
// text is returned unchanged.
func (f *Formatter) RenderMarkdown(md string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width := max(f.Width-4, 20)
	style := "light"
	if f.Theme == domain.ThemeDark {
		style = "dark"
	}
	key := fmt.Sprintf("%s:%d", style, width)

	mdMu.Lock()
	r := mdRenderer[key]
	if r == nil {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdMu.Unlock()
			return md
		}
		mdRenderer[key] = r
	}
	mdMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
