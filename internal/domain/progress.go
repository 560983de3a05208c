package domain

// ProgressSchemaVersion is the version written with every persisted UserProgress.
const ProgressSchemaVersion = 1

// Default cursor position for a fresh tracker.
const (
	DefaultWeek = 1
	DefaultDay  = "sat"
)

// UserProgress is the durable part of the application state.
type UserProgress struct {
	SchemaVersion  int            `json:"schema_version"`
	CompletedTasks []string       `json:"completedTasks"`
	TimeSpent      map[string]int `json:"timeSpent"` // task ID -> minutes
	Notes          []Note         `json:"notes"`
	JournalEntries []JournalEntry `json:"journalEntries"`
	Skills         []Skill        `json:"skills"`
	CurrentWeek    int            `json:"currentWeek"`
	CurrentDay     string         `json:"currentDay"`
}

// NewUserProgress returns an empty progress record positioned at the first day.
func NewUserProgress() UserProgress {
	return UserProgress{
		SchemaVersion:  ProgressSchemaVersion,
		CompletedTasks: []string{},
		TimeSpent:      map[string]int{},
		Notes:          []Note{},
		JournalEntries: []JournalEntry{},
		Skills:         []Skill{},
		CurrentWeek:    DefaultWeek,
		CurrentDay:     DefaultDay,
	}
}

// Normalize fills nil collections and zero cursors with defaults so a record
// read from older or partial storage behaves like a fresh one. Repeated
// completed ids collapse to their first occurrence and negative minutes
// become zero. The collections it changes are replaced, never edited in
// place, so a caller's copy of the record is left alone.
func (p *UserProgress) Normalize() {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = ProgressSchemaVersion
	}
	p.CompletedTasks = uniqueIDs(p.CompletedTasks)
	p.TimeSpent = clampMinutes(p.TimeSpent)
	if p.Notes == nil {
		p.Notes = []Note{}
	}
	if p.JournalEntries == nil {
		p.JournalEntries = []JournalEntry{}
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.CurrentWeek <= 0 {
		p.CurrentWeek = DefaultWeek
	}
	if p.CurrentDay == "" {
		p.CurrentDay = DefaultDay
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func clampMinutes(spent map[string]int) map[string]int {
	out := make(map[string]int, len(spent))
	for id, m := range spent {
		out[id] = max(m, 0)
	}
	return out
}
