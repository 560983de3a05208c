package domain

import (
	"strings"
	"time"
)

// JournalDateLayout is the layout of JournalEntry.Date.
const JournalDateLayout = "2006-01-02"

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	TaskID    string    `json:"taskId,omitempty"`
	Template  string    `json:"template,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Matches reports whether term occurs in the title, content or any tag,
// ignoring case. An empty term matches everything.
func (n Note) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// JournalEntry is a daily reflection, conceptually one per (Week, Day).
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Week      int       `json:"week"`
	Day       string    `json:"day"`
	CreatedAt time.Time `json:"createdAt"`
}

// SameSlot reports whether both entries belong to the same plan day.
func (e JournalEntry) SameSlot(other JournalEntry) bool {
	return e.Week == other.Week && e.Day == other.Day
}
