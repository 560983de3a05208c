package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/progressmate/internal/store"
)

const (
	taskCompletedMessage   = "Task completed!"
	taskUncompletedMessage = "Task marked as incomplete"
	taskNotFoundMessage    = "Task not found in the learning plan"
)

type taskService struct {
	st       StateStore
	notify   Notifier
	observer UseCaseObserver
}

func NewTaskService(st StateStore, notify Notifier, observers ...UseCaseObserver) TaskService {
	return &taskService{st: st, notify: notify, observer: useCaseObserverOrNoop(observers)}
}

// Complete marks the task done and credits its planned duration.
func (s *taskService) Complete(ctx context.Context, taskID string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "task.complete", startedAt, map[string]any{"task_id": taskID}, &err)

	ref, ok := s.st.State().FindTask(taskID)
	if !ok {
		return s.notFound(taskID)
	}
	s.st.Dispatch(store.CompleteTask{TaskID: taskID, TimeSpent: ref.Task.Duration})
	s.success(taskCompletedMessage)
	return nil
}

// Uncomplete clears the task's completion and time. Ids left over from an
// older plan may still be uncompleted.
func (s *taskService) Uncomplete(ctx context.Context, taskID string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "task.uncomplete", startedAt, map[string]any{"task_id": taskID}, &err)

	state := s.st.State()
	if _, ok := state.FindTask(taskID); !ok && !state.IsTaskCompleted(taskID) {
		return s.notFound(taskID)
	}
	s.st.Dispatch(store.UncompleteTask{TaskID: taskID})
	if s.notify != nil {
		s.notify.Info(taskUncompletedMessage)
	}
	return nil
}

func (s *taskService) Toggle(ctx context.Context, taskID string) (bool, error) {
	if s.st.State().IsTaskCompleted(taskID) {
		return false, s.Uncomplete(ctx, taskID)
	}
	if err := s.Complete(ctx, taskID); err != nil {
		return false, err
	}
	return true, nil
}

// LogFocus adds minutes to the task without changing its completion.
func (s *taskService) LogFocus(ctx context.Context, taskID string, minutes int) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "task.log_focus", startedAt, map[string]any{
		"task_id": taskID,
		"minutes": minutes,
	}, &err)

	if minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %d: %w", minutes, ErrValidation)
	}
	if _, ok := s.st.State().FindTask(taskID); !ok {
		return s.notFound(taskID)
	}
	s.st.Dispatch(store.LogFocusTime{TaskID: taskID, Minutes: minutes})
	return nil
}

func (s *taskService) notFound(taskID string) error {
	if s.notify != nil {
		s.notify.Warning(taskNotFoundMessage)
	}
	return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
}

func (s *taskService) success(message string) {
	if s.notify != nil {
		s.notify.Success(message)
	}
}
