package service

import (
	"context"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/settings"
	"github.com/alexanderramin/progressmate/internal/store"
)

// StateStore is the part of store.Store the services use.
type StateStore interface {
	State() store.AppState
	Dispatch(a store.Action) store.AppState
}

// Notifier raises toasts. toast.Scheduler implements it.
type Notifier interface {
	Success(message string) string
	Error(message string) string
	Info(message string) string
	Warning(message string) string
}

// BootstrapResult summarises what startup managed to restore.
type BootstrapResult struct {
	PlanLoaded       bool
	ProgressRestored bool
	Warnings         []string
	// Settings holds the preferences in effect, defaults when the file was
	// missing or unreadable.
	Settings settings.Settings
}

type AppService interface {
	Bootstrap(ctx context.Context) (*BootstrapResult, error)
}

type TaskService interface {
	Complete(ctx context.Context, taskID string) error
	Uncomplete(ctx context.Context, taskID string) error
	Toggle(ctx context.Context, taskID string) (completed bool, err error)
	LogFocus(ctx context.Context, taskID string, minutes int) error
}

type PreferenceService interface {
	SetLanguage(ctx context.Context, lang domain.Language) error
	SetTheme(ctx context.Context, theme domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
	GoTo(ctx context.Context, week int, day string) error
}

// NoteInput carries the editable fields of a note.
type NoteInput struct {
	Title    string
	Content  string
	Tags     []string
	TaskID   string
	Template string
}

type NoteService interface {
	Create(ctx context.Context, in NoteInput) (*domain.Note, error)
	Update(ctx context.Context, id string, in NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Note, error)
	Search(ctx context.Context, term string) ([]domain.Note, error)
	ListForTask(ctx context.Context, taskID string) ([]domain.Note, error)
}

type JournalService interface {
	// Save writes the entry for a plan day, replacing any earlier one.
	Save(ctx context.Context, week int, day, content string) (entry *domain.JournalEntry, updated bool, err error)
	Get(ctx context.Context, week int, day string) (*domain.JournalEntry, error)
	List(ctx context.Context) ([]domain.JournalEntry, error)
}

// SkillInput carries the fields of a new skill.
type SkillInput struct {
	Name        string
	Category    string
	Proficiency domain.Proficiency
	Notes       string
}

type SkillService interface {
	Add(ctx context.Context, in SkillInput) (*domain.Skill, error)
	SetProficiency(ctx context.Context, id string, level domain.Proficiency) error
	SetNotes(ctx context.Context, id, notes string) error
	// SeedDefaults installs the predefined skills when none exist and
	// returns how many were added.
	SeedDefaults(ctx context.Context) (int, error)
	List(ctx context.Context, category string) ([]domain.Skill, error)
}

type FocusService interface {
	// RecordCompletion credits a finished pomodoro interval to its task.
	RecordCompletion(ctx context.Context, c pomodoro.Completion) error
}

// WeekStatus is the completion of one plan week.
type WeekStatus struct {
	Week     int
	Title    domain.BilingualText
	Progress float64
	Done     int
	Total    int
}

// StatusReport is the achievements overview.
type StatusReport struct {
	Summary   store.StatsSummary
	ByType    []store.TypeProgress
	Weeks     []WeekStatus
	PlanReady bool
}

type StatusService interface {
	GetStatus(ctx context.Context) (*StatusReport, error)
}
