package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/progressmate/internal/pomodoro"
	"github.com/alexanderramin/progressmate/internal/store"
)

type focusService struct {
	st       StateStore
	notify   Notifier
	observer UseCaseObserver
}

func NewFocusService(st StateStore, notify Notifier, observers ...UseCaseObserver) FocusService {
	return &focusService{st: st, notify: notify, observer: useCaseObserverOrNoop(observers)}
}

// RecordCompletion adds the minutes of a finished work interval to its bound
// task. Breaks and unbound intervals are ignored.
func (s *focusService) RecordCompletion(ctx context.Context, c pomodoro.Completion) (err error) {
	if c.Mode != pomodoro.ModeWork || c.TaskID == "" {
		return nil
	}
	minutes := int(c.Duration / time.Minute)
	if minutes <= 0 {
		return nil
	}

	startedAt := time.Now()
	defer observe(ctx, s.observer, "focus.record_completion", startedAt, map[string]any{
		"task_id":  c.TaskID,
		"minutes":  minutes,
		"sessions": c.Sessions,
	}, &err)

	if _, ok := s.st.State().FindTask(c.TaskID); !ok {
		return fmt.Errorf("task %s: %w", c.TaskID, ErrNotFound)
	}
	s.st.Dispatch(store.LogFocusTime{TaskID: c.TaskID, Minutes: minutes})
	if s.notify != nil {
		s.notify.Info(fmt.Sprintf("Focus session complete: %d min logged", minutes))
	}
	return nil
}
