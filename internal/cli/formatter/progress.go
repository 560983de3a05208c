package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a percentage in
// [0, 100]. Green from 66%, yellow from 33%, red below.
func (f *Formatter) RenderProgress(pct float64, width int) string {
	pct = max(0, min(pct, 100))
	if width < 2 {
		width = 2
	}

	filled := min(int(pct/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := f.Green
	if pct < 33 {
		style = f.Red
	} else if pct < 66 {
		style = f.Yellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
