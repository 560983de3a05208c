package store

import (
	"maps"
	"slices"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// Action is a closed set of state transitions. Every variant carries its own
// transition, so adding a variant without one fails to compile.
type Action interface {
	// Kind names the action for logging.
	Kind() string
	apply(s AppState) AppState
}

// Reduce applies a to s and returns the next state. It is pure: s is never
// modified. A nil action returns s unchanged.
func Reduce(s AppState, a Action) AppState {
	if a == nil {
		return s
	}
	return a.apply(s)
}

type SetLanguage struct{ Language domain.Language }

func (SetLanguage) Kind() string { return "SET_LANGUAGE" }
func (a SetLanguage) apply(s AppState) AppState {
	s.Language = a.Language
	return s
}

type SetTheme struct{ Theme domain.Theme }

func (SetTheme) Kind() string { return "SET_THEME" }
func (a SetTheme) apply(s AppState) AppState {
	s.Theme = a.Theme
	return s
}

// SetPlan installs the curriculum and ends the loading phase.
type SetPlan struct{ Plan *domain.Plan }

func (SetPlan) Kind() string { return "SET_PLAN" }
func (a SetPlan) apply(s AppState) AppState {
	s.Plan = a.Plan
	s.Loading = false
	return s
}

type SetLoading struct{ Loading bool }

func (SetLoading) Kind() string { return "SET_LOADING" }
func (a SetLoading) apply(s AppState) AppState {
	s.Loading = a.Loading
	return s
}

// CompleteTask marks a task done and records the minutes spent on it.
// Completing an already completed task only overwrites the minutes.
type CompleteTask struct {
	TaskID    string
	TimeSpent int
}

func (CompleteTask) Kind() string { return "COMPLETE_TASK" }
func (a CompleteTask) apply(s AppState) AppState {
	p := s.Progress
	if !slices.Contains(p.CompletedTasks, a.TaskID) {
		p.CompletedTasks = append(slices.Clone(p.CompletedTasks), a.TaskID)
	}
	p.TimeSpent = cloneTimeSpent(p.TimeSpent)
	p.TimeSpent[a.TaskID] = max(a.TimeSpent, 0)
	return s.withProgress(p)
}

// UncompleteTask removes every occurrence of the task and zeroes its time.
type UncompleteTask struct{ TaskID string }

func (UncompleteTask) Kind() string { return "UNCOMPLETE_TASK" }
func (a UncompleteTask) apply(s AppState) AppState {
	p := s.Progress
	p.CompletedTasks = filter(p.CompletedTasks, func(id string) bool { return id != a.TaskID })
	p.TimeSpent = cloneTimeSpent(p.TimeSpent)
	p.TimeSpent[a.TaskID] = 0
	return s.withProgress(p)
}

// LogFocusTime adds minutes to a task without completing it.
type LogFocusTime struct {
	TaskID  string
	Minutes int
}

func (LogFocusTime) Kind() string { return "LOG_FOCUS_TIME" }
func (a LogFocusTime) apply(s AppState) AppState {
	if a.Minutes <= 0 {
		return s
	}
	p := s.Progress
	p.TimeSpent = cloneTimeSpent(p.TimeSpent)
	p.TimeSpent[a.TaskID] += a.Minutes
	return s.withProgress(p)
}

type AddNote struct{ Note domain.Note }

func (AddNote) Kind() string { return "ADD_NOTE" }
func (a AddNote) apply(s AppState) AppState {
	p := s.Progress
	p.Notes = append(slices.Clone(p.Notes), a.Note)
	return s.withProgress(p)
}

// UpdateNote replaces the note with the same ID. Unknown IDs are ignored.
type UpdateNote struct{ Note domain.Note }

func (UpdateNote) Kind() string { return "UPDATE_NOTE" }
func (a UpdateNote) apply(s AppState) AppState {
	i := slices.IndexFunc(s.Progress.Notes, func(n domain.Note) bool { return n.ID == a.Note.ID })
	if i < 0 {
		return s
	}
	p := s.Progress
	p.Notes = slices.Clone(p.Notes)
	p.Notes[i] = a.Note
	return s.withProgress(p)
}

type DeleteNote struct{ ID string }

func (DeleteNote) Kind() string { return "DELETE_NOTE" }
func (a DeleteNote) apply(s AppState) AppState {
	if !slices.ContainsFunc(s.Progress.Notes, func(n domain.Note) bool { return n.ID == a.ID }) {
		return s
	}
	p := s.Progress
	p.Notes = filter(p.Notes, func(n domain.Note) bool { return n.ID != a.ID })
	return s.withProgress(p)
}

// AddJournalEntry appends unconditionally; it does not look for an existing
// entry on the same day. Use SaveJournalEntry for one-entry-per-day.
type AddJournalEntry struct{ Entry domain.JournalEntry }

func (AddJournalEntry) Kind() string { return "ADD_JOURNAL_ENTRY" }
func (a AddJournalEntry) apply(s AppState) AppState {
	p := s.Progress
	p.JournalEntries = append(slices.Clone(p.JournalEntries), a.Entry)
	return s.withProgress(p)
}

// SaveJournalEntry replaces the entry written for the same (week, day),
// keeping its ID and creation time, or appends when there is none.
type SaveJournalEntry struct{ Entry domain.JournalEntry }

func (SaveJournalEntry) Kind() string { return "SAVE_JOURNAL_ENTRY" }
func (a SaveJournalEntry) apply(s AppState) AppState {
	p := s.Progress
	p.JournalEntries = slices.Clone(p.JournalEntries)
	i := slices.IndexFunc(p.JournalEntries, a.Entry.SameSlot)
	if i < 0 {
		p.JournalEntries = append(p.JournalEntries, a.Entry)
		return s.withProgress(p)
	}
	existing := p.JournalEntries[i]
	entry := a.Entry
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	p.JournalEntries[i] = entry
	return s.withProgress(p)
}

// UpdateSkill replaces the skill with the same ID, or appends it.
type UpdateSkill struct{ Skill domain.Skill }

func (UpdateSkill) Kind() string { return "UPDATE_SKILL" }
func (a UpdateSkill) apply(s AppState) AppState {
	p := s.Progress
	p.Skills = slices.Clone(p.Skills)
	if i := slices.IndexFunc(p.Skills, func(sk domain.Skill) bool { return sk.ID == a.Skill.ID }); i >= 0 {
		p.Skills[i] = a.Skill
	} else {
		p.Skills = append(p.Skills, a.Skill)
	}
	return s.withProgress(p)
}

// SeedSkills installs a starter skill set. It only applies while the skill
// list is empty.
type SeedSkills struct{ Skills []domain.Skill }

func (SeedSkills) Kind() string { return "SEED_SKILLS" }
func (a SeedSkills) apply(s AppState) AppState {
	if len(s.Progress.Skills) > 0 || len(a.Skills) == 0 {
		return s
	}
	p := s.Progress
	p.Skills = slices.Clone(a.Skills)
	return s.withProgress(p)
}

type SetCurrentWeek struct{ Week int }

func (SetCurrentWeek) Kind() string { return "SET_CURRENT_WEEK" }
func (a SetCurrentWeek) apply(s AppState) AppState {
	p := s.Progress
	p.CurrentWeek = a.Week
	return s.withProgress(p)
}

type SetCurrentDay struct{ Day string }

func (SetCurrentDay) Kind() string { return "SET_CURRENT_DAY" }
func (a SetCurrentDay) apply(s AppState) AppState {
	p := s.Progress
	p.CurrentDay = a.Day
	return s.withProgress(p)
}

type AddToast struct{ Toast domain.Toast }

func (AddToast) Kind() string { return "ADD_TOAST" }
func (a AddToast) apply(s AppState) AppState {
	s.Toasts = append(slices.Clone(s.Toasts), a.Toast)
	return s
}

type RemoveToast struct{ ID string }

func (RemoveToast) Kind() string { return "REMOVE_TOAST" }
func (a RemoveToast) apply(s AppState) AppState {
	s.Toasts = filter(s.Toasts, func(t domain.Toast) bool { return t.ID != a.ID })
	return s
}

// HydrateProgress replaces Progress with a record read from storage.
type HydrateProgress struct{ Progress domain.UserProgress }

func (HydrateProgress) Kind() string { return "HYDRATE_PROGRESS" }
func (a HydrateProgress) apply(s AppState) AppState {
	p := a.Progress
	p.Normalize()
	return s.withProgress(p)
}

// filter returns a new, non-nil slice holding the elements of in that keep
// accepts.
func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func cloneTimeSpent(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return maps.Clone(m)
}
