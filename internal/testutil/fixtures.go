package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithDuration(minutes int) TaskOption {
	return func(t *domain.Task) {
		t.Duration = minutes
	}
}

func NewTestTask(id string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:          id,
		Type:        domain.TaskBlueTeam,
		Duration:    30,
		Description: domain.Bi("Task "+id, "مهمة "+id),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestDay builds a day whose tasks are named w<week>-<key>-t<n>.
func NewTestDay(week int, key string, taskCount int) domain.Day {
	d := domain.Day{
		Key:   key,
		Day:   domain.Bi(key, key),
		Topic: domain.Bi("Topic "+key, "موضوع "+key),
		Resources: []domain.Resource{
			{Type: domain.ResourceArticle, Title: "Reading for " + key, URL: "https://example.com/" + key},
		},
		NotesPrompt: domain.NotesPrompt{
			Title:  domain.Bi("Reflect", "تأمل"),
			Points: []domain.BilingualText{domain.Bi("What did you learn?", "ماذا تعلمت؟")},
		},
	}
	for i := 1; i <= taskCount; i++ {
		d.Tasks = append(d.Tasks, NewTestTask(fmt.Sprintf("w%d-%s-t%d", week, key, i)))
	}
	return d
}

// NewTestWeek builds a week with the given day keys and tasksPerDay tasks each.
func NewTestWeek(number int, dayKeys []string, tasksPerDay int) domain.Week {
	w := domain.Week{
		Week:      number,
		Phase:     (number-1)/4 + 1,
		Title:     domain.Bi(fmt.Sprintf("Week %d", number), fmt.Sprintf("الأسبوع %d", number)),
		Objective: domain.Bi("Objective", "الهدف"),
	}
	for _, k := range dayKeys {
		w.Days = append(w.Days, NewTestDay(number, k, tasksPerDay))
	}
	return w
}

// NewTestPlan builds a plan of weeks numbered from 1, each with a "sat" and
// "sun" day holding two tasks apiece.
func NewTestPlan(weeks int) *domain.Plan {
	p := &domain.Plan{}
	for i := 1; i <= weeks; i++ {
		p.Weeks = append(p.Weeks, NewTestWeek(i, []string{"sat", "sun"}, 2))
	}
	return p
}

// Note options
type NoteOption func(*domain.Note)

func WithNoteTags(tags ...string) NoteOption {
	return func(n *domain.Note) {
		n.Tags = tags
	}
}

func WithNoteTask(taskID string) NoteOption {
	return func(n *domain.Note) {
		n.TaskID = taskID
	}
}

func WithNoteUpdatedAt(t time.Time) NoteOption {
	return func(n *domain.Note) {
		n.UpdatedAt = t
	}
}

func NewTestNote(title, content string, opts ...NoteOption) domain.Note {
	now := time.Now().UTC()
	n := domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

func NewTestJournalEntry(week int, day, date, content string) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Content:   content,
		Week:      week,
		Day:       day,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestSkill(name, category string, level domain.Proficiency) domain.Skill {
	return domain.Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Proficiency: level,
	}
}
