package formatter

import (
	"strings"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// FormatToasts renders pending notifications, one per line.
func (f *Formatter) FormatToasts(toasts []domain.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range toasts {
		b.WriteString(f.SeverityIndicator(t.Severity) + " " + t.Message + "\n")
	}
	return b.String()
}
