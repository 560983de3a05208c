// Package toast raises transient notifications on a store and removes them
// once their duration has elapsed.
package toast

import (
	"sync"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/google/uuid"
)

// Scheduler adds toasts to a store and schedules their removal.
type Scheduler struct {
	d      store.Dispatcher
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	newID  func() string
}

// New creates a Scheduler dispatching to d.
func New(d store.Dispatcher) *Scheduler {
	return &Scheduler{
		d:      d,
		timers: make(map[string]*time.Timer),
		newID:  func() string { return uuid.New().String() },
	}
}

// Add raises a toast and returns its ID. A non-positive duration falls back
// to domain.DefaultToastDuration.
func (s *Scheduler) Add(message string, severity domain.ToastSeverity, duration time.Duration) string {
	if duration <= 0 {
		duration = domain.DefaultToastDuration
	}
	if severity == "" {
		severity = domain.ToastInfo
	}
	id := s.newID()

	s.d.Dispatch(store.AddToast{Toast: domain.Toast{
		ID:       id,
		Message:  message,
		Severity: severity,
		Duration: duration,
	}})

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.timers[id] = time.AfterFunc(duration, func() { s.expire(id) })
	}
	return id
}

func (s *Scheduler) Success(message string) string {
	return s.Add(message, domain.ToastSuccess, 0)
}

func (s *Scheduler) Error(message string) string {
	return s.Add(message, domain.ToastError, 0)
}

func (s *Scheduler) Info(message string) string {
	return s.Add(message, domain.ToastInfo, 0)
}

func (s *Scheduler) Warning(message string) string {
	return s.Add(message, domain.ToastWarning, 0)
}

// Dismiss removes a toast before it expires. Its pending expiry is cancelled.
func (s *Scheduler) Dismiss(id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	s.d.Dispatch(store.RemoveToast{ID: id})
}

// Pending returns the number of toasts still waiting to expire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every pending expiry. Toasts already in the store stay there.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) expire(id string) {
	s.mu.Lock()
	_, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	s.d.Dispatch(store.RemoveToast{ID: id})
}
