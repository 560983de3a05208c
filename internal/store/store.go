package store

import "sync"

// Dispatcher is the write side of a Store, injected into collaborators.
type Dispatcher interface {
	Dispatch(a Action) AppState
}

// Listener observes a transition after it has been applied.
type Listener func(prev, next AppState, a Action)

// Store owns one AppState. Transitions are serialized: each Dispatch runs
// Reduce under the lock, then notifies listeners in registration order
// outside it, so a listener may dispatch again.
type Store struct {
	mu        sync.Mutex
	state     AppState
	listeners []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// New creates a Store starting from initial.
func New(initial AppState) *Store {
	return &Store{state: initial}
}

// State returns the current snapshot.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) AppState {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	listeners := append([]*listenerEntry(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(prev, next, a)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	entry := &listenerEntry{fn: fn}
	s.mu.Lock()
	s.listeners = append(s.listeners, entry)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l == entry {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
