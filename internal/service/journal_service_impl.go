package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
)

const (
	journalEmptyMessage   = "Please write something in your journal"
	journalSavedMessage   = "Journal entry saved successfully"
	journalUpdatedMessage = "Journal entry updated successfully"
)

type journalService struct {
	st       StateStore
	notify   Notifier
	now      func() time.Time
	observer UseCaseObserver
}

// NewJournalService keeps one journal entry per plan day. A nil clock uses
// time.Now; entries are dated in the clock's location.
func NewJournalService(st StateStore, notify Notifier, clock func() time.Time, observers ...UseCaseObserver) JournalService {
	return &journalService{st: st, notify: notify, now: clockOrNow(clock), observer: useCaseObserverOrNoop(observers)}
}

func (s *journalService) Save(ctx context.Context, week int, day, content string) (entry *domain.JournalEntry, updated bool, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "journal.save", startedAt, map[string]any{"week": week, "day": day}, &err)

	content = strings.TrimSpace(content)
	if content == "" {
		if s.notify != nil {
			s.notify.Warning(journalEmptyMessage)
		}
		return nil, false, fmt.Errorf("journal content is empty: %w", ErrValidation)
	}

	state := s.st.State()
	if week <= 0 || day == "" {
		return nil, false, fmt.Errorf("journal needs a week and a day: %w", ErrValidation)
	}
	if state.Plan != nil && state.Plan.FindWeek(week).FindDay(day) == nil {
		return nil, false, fmt.Errorf("week %d day %q: %w", week, day, ErrNotFound)
	}

	_, updated = state.JournalEntryFor(week, day)
	now := s.now()
	next := s.st.Dispatch(store.SaveJournalEntry{Entry: domain.JournalEntry{
		ID:        uuid.New().String(),
		Date:      now.Format(domain.JournalDateLayout),
		Content:   content,
		Week:      week,
		Day:       day,
		CreatedAt: now,
	}})

	saved, _ := next.JournalEntryFor(week, day)
	if updated {
		notifySuccess(s.notify, journalUpdatedMessage)
	} else {
		notifySuccess(s.notify, journalSavedMessage)
	}
	return &saved, updated, nil
}

func (s *journalService) Get(_ context.Context, week int, day string) (*domain.JournalEntry, error) {
	e, ok := s.st.State().JournalEntryFor(week, day)
	if !ok {
		return nil, fmt.Errorf("journal entry for week %d day %q: %w", week, day, ErrNotFound)
	}
	return &e, nil
}

// List returns every entry, most recent date first.
func (s *journalService) List(_ context.Context) ([]domain.JournalEntry, error) {
	entries := slices.Clone(s.st.State().Progress.JournalEntries)
	slices.SortStableFunc(entries, func(a, b domain.JournalEntry) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return entries, nil
}
