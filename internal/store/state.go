// Package store holds the application state and the pure transition function
// that evolves it. Presentation code never mutates state directly: it
// dispatches Actions and renders from the derived queries in derive.go.
package store

import "github.com/alexanderramin/progressmate/internal/domain"

// AppState is an immutable snapshot of everything the UI renders from.
type AppState struct {
	Language domain.Language
	Theme    domain.Theme
	Plan     *domain.Plan
	Progress domain.UserProgress
	Toasts   []domain.Toast
	Loading  bool

	// ProgressRev increases whenever a transition touches Progress.
	ProgressRev uint64
}

// InitialState returns the state before the curriculum and stored progress
// have been loaded.
func InitialState() AppState {
	return AppState{
		Language: domain.LangEnglish,
		Theme:    domain.ThemeLight,
		Progress: domain.NewUserProgress(),
		Toasts:   []domain.Toast{},
		Loading:  true,
	}
}

// withProgress returns a copy of s whose Progress is p and whose revision is
// bumped.
func (s AppState) withProgress(p domain.UserProgress) AppState {
	s.Progress = p
	s.ProgressRev++
	return s
}
