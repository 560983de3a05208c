package store

import (
	"slices"
	"sort"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
)

// Text resolves a bilingual pair for the current language.
func (s AppState) Text(t domain.BilingualText) string {
	return t.In(s.Language)
}

func (s AppState) IsTaskCompleted(id string) bool {
	return slices.Contains(s.Progress.CompletedTasks, id)
}

// TimeSpentOn returns the minutes recorded for a task, 0 when none.
func (s AppState) TimeSpentOn(id string) int {
	return s.Progress.TimeSpent[id]
}

// ProgressOf returns the completed share of tasks as a percentage in [0, 100].
// An empty collection has 0 progress.
func (s AppState) ProgressOf(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if s.IsTaskCompleted(t.ID) {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}

func (s AppState) WeekProgress(w domain.Week) float64 {
	return s.ProgressOf(w.Tasks())
}

func (s AppState) DayProgress(d domain.Day) float64 {
	return s.ProgressOf(d.Tasks)
}

// OverallProgress is the completed share of every task in the plan.
func (s AppState) OverallProgress() float64 {
	return s.ProgressOf(s.Plan.AllTasks())
}

// CurrentWeek returns the week under the cursor, or nil.
func (s AppState) CurrentWeek() *domain.Week {
	return s.Plan.FindWeek(s.Progress.CurrentWeek)
}

// CurrentDay returns the day under the cursor, or nil.
func (s AppState) CurrentDay() *domain.Day {
	return s.CurrentWeek().FindDay(s.Progress.CurrentDay)
}

func (s AppState) FindTask(id string) (domain.TaskRef, bool) {
	return s.Plan.FindTask(id)
}

func (s AppState) FindNote(id string) (domain.Note, bool) {
	i := slices.IndexFunc(s.Progress.Notes, func(n domain.Note) bool { return n.ID == id })
	if i < 0 {
		return domain.Note{}, false
	}
	return s.Progress.Notes[i], true
}

func (s AppState) FindSkill(id string) (domain.Skill, bool) {
	i := slices.IndexFunc(s.Progress.Skills, func(sk domain.Skill) bool { return sk.ID == id })
	if i < 0 {
		return domain.Skill{}, false
	}
	return s.Progress.Skills[i], true
}

// JournalEntryFor returns the first entry written for the given plan day.
func (s AppState) JournalEntryFor(week int, day string) (domain.JournalEntry, bool) {
	for _, e := range s.Progress.JournalEntries {
		if e.Week == week && e.Day == day {
			return e, true
		}
	}
	return domain.JournalEntry{}, false
}

// SearchNotes returns notes matching term, most recently updated first.
func (s AppState) SearchNotes(term string) []domain.Note {
	var out []domain.Note
	for _, n := range s.Progress.Notes {
		if n.Matches(term) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// NotesForTask returns notes linked to a task.
func (s AppState) NotesForTask(taskID string) []domain.Note {
	var out []domain.Note
	for _, n := range s.Progress.Notes {
		if n.TaskID == taskID {
			out = append(out, n)
		}
	}
	return out
}

// SkillsByCategory groups skills by category, optionally filtered by a
// single category ("" or "all" keeps everything).
func (s AppState) SkillsByCategory(category string) map[string][]domain.Skill {
	out := make(map[string][]domain.Skill)
	for _, sk := range s.Progress.Skills {
		if category != "" && category != "all" && sk.Category != category {
			continue
		}
		out[sk.Category] = append(out[sk.Category], sk)
	}
	return out
}

// TotalLearningHours sums all recorded minutes, in hours.
func (s AppState) TotalLearningHours() float64 {
	total := 0
	for _, m := range s.Progress.TimeSpent {
		total += m
	}
	return float64(total) / 60
}

// TypeProgress counts completion for one task type.
type TypeProgress struct {
	Type      domain.TaskType
	Completed int
	Total     int
}

// Percent returns the completed share as a percentage, 0 when Total is 0.
func (tp TypeProgress) Percent() float64 {
	if tp.Total == 0 {
		return 0
	}
	return float64(tp.Completed) / float64(tp.Total) * 100
}

// TaskTypeBreakdown reports completion per task type in display order.
func (s AppState) TaskTypeBreakdown() []TypeProgress {
	byType := make(map[domain.TaskType]*TypeProgress, len(domain.TaskTypes))
	out := make([]TypeProgress, len(domain.TaskTypes))
	for i, tt := range domain.TaskTypes {
		out[i].Type = tt
		byType[tt] = &out[i]
	}
	for _, t := range s.Plan.AllTasks() {
		tp, ok := byType[t.Type]
		if !ok {
			continue
		}
		tp.Total++
		if s.IsTaskCompleted(t.ID) {
			tp.Completed++
		}
	}
	return out
}

// CurrentStreak counts consecutive days with a journal entry, ending today
// or yesterday relative to now.
func (s AppState) CurrentStreak(now time.Time) int {
	days := make(map[string]bool, len(s.Progress.JournalEntries))
	for _, e := range s.Progress.JournalEntries {
		days[e.Date] = true
	}
	day := now
	if !days[day.Format(domain.JournalDateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[day.Format(domain.JournalDateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// StatsSummary is the headline numbers of the achievements view.
type StatsSummary struct {
	OverallProgress     float64
	CompletedTasks      int
	TotalTasks          int
	TotalLearningHours  float64
	CurrentStreak       int
	NotesCount          int
	JournalEntriesCount int
}

// Stats counts only completed ids that still resolve to a task in the plan.
func (s AppState) Stats(now time.Time) StatsSummary {
	tasks := s.Plan.AllTasks()
	done := 0
	for _, t := range tasks {
		if s.IsTaskCompleted(t.ID) {
			done++
		}
	}
	return StatsSummary{
		OverallProgress:     s.ProgressOf(tasks),
		CompletedTasks:      done,
		TotalTasks:          len(tasks),
		TotalLearningHours:  s.TotalLearningHours(),
		CurrentStreak:       s.CurrentStreak(now),
		NotesCount:          len(s.Progress.Notes),
		JournalEntriesCount: len(s.Progress.JournalEntries),
	}
}
