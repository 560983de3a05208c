package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
)

const (
	requiredFieldsMessage = "Please fill in all required fields"
	noteCreatedMessage    = "Note created successfully"
	noteUpdatedMessage    = "Note updated successfully"
	noteDeletedMessage    = "Note deleted successfully"
)

type noteService struct {
	st       StateStore
	notify   Notifier
	now      func() time.Time
	observer UseCaseObserver
}

// NewNoteService manages notes. A nil clock uses time.Now.
func NewNoteService(st StateStore, notify Notifier, clock func() time.Time, observers ...UseCaseObserver) NoteService {
	return &noteService{st: st, notify: notify, now: clockOrNow(clock), observer: useCaseObserverOrNoop(observers)}
}

func (s *noteService) Create(ctx context.Context, in NoteInput) (note *domain.Note, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "note.create", startedAt, map[string]any{"task_id": in.TaskID}, &err)

	in, err = s.validate(in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	n := domain.Note{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Content:   in.Content,
		Tags:      domain.NormalizeTags(in.Tags),
		TaskID:    in.TaskID,
		Template:  in.Template,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.st.Dispatch(store.AddNote{Note: n})
	notifySuccess(s.notify, noteCreatedMessage)
	return &n, nil
}

// Update replaces the editable fields, keeping the ID and creation time.
func (s *noteService) Update(ctx context.Context, id string, in NoteInput) (note *domain.Note, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "note.update", startedAt, map[string]any{"note_id": id}, &err)

	existing, ok := s.st.State().FindNote(id)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	in, err = s.validate(in)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Content = in.Content
	existing.Tags = domain.NormalizeTags(in.Tags)
	existing.TaskID = in.TaskID
	existing.Template = in.Template
	existing.UpdatedAt = s.now()

	s.st.Dispatch(store.UpdateNote{Note: existing})
	notifySuccess(s.notify, noteUpdatedMessage)
	return &existing, nil
}

func (s *noteService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "note.delete", startedAt, map[string]any{"note_id": id}, &err)

	if _, ok := s.st.State().FindNote(id); !ok {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	s.st.Dispatch(store.DeleteNote{ID: id})
	notifySuccess(s.notify, noteDeletedMessage)
	return nil
}

func (s *noteService) Get(_ context.Context, id string) (*domain.Note, error) {
	n, ok := s.st.State().FindNote(id)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return &n, nil
}

// Search returns the notes matching term, newest first.
func (s *noteService) Search(_ context.Context, term string) ([]domain.Note, error) {
	return s.st.State().SearchNotes(term), nil
}

func (s *noteService) ListForTask(_ context.Context, taskID string) ([]domain.Note, error) {
	return s.st.State().NotesForTask(taskID), nil
}

func (s *noteService) validate(in NoteInput) (NoteInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.TaskID = strings.TrimSpace(in.TaskID)
	if in.Title == "" || in.Content == "" {
		if s.notify != nil {
			s.notify.Warning(requiredFieldsMessage)
		}
		return in, fmt.Errorf("note title and content are required: %w", ErrValidation)
	}
	if in.TaskID != "" {
		if _, ok := s.st.State().FindTask(in.TaskID); !ok {
			return in, fmt.Errorf("linked task %s: %w", in.TaskID, ErrNotFound)
		}
	}
	return in, nil
}

func notifySuccess(n Notifier, message string) {
	if n != nil {
		n.Success(message)
	}
}

func clockOrNow(clock func() time.Time) func() time.Time {
	if clock != nil {
		return clock
	}
	return time.Now
}
