package domain

import "time"

// DefaultToastDuration applies when a toast is raised without a duration.
const DefaultToastDuration = 3 * time.Second

// Toast is a transient, auto-expiring notification.
type Toast struct {
	ID       string
	Message  string
	Severity ToastSeverity
	Duration time.Duration
}
