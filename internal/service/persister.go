package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alexanderramin/progressmate/internal/repository"
	"github.com/alexanderramin/progressmate/internal/store"
)

// saveFailedMessage is shown when the progress record could not be written.
const saveFailedMessage = "Could not save your progress; changes are kept for this session"

// Subscriber is the observation side of store.Store.
type Subscriber interface {
	Subscribe(fn store.Listener) (unsubscribe func())
}

// Persister writes the progress record after every transition that changed
// it. Failures are logged and surfaced as a warning toast; the in-memory
// state is never rolled back.
type Persister struct {
	repo   repository.ProgressRepo
	notify Notifier
	logger *slog.Logger

	mu       sync.Mutex
	savedRev uint64
}

func NewPersister(repo repository.ProgressRepo, notify Notifier, logger *slog.Logger) *Persister {
	return &Persister{repo: repo, notify: notify, logger: loggerOrDiscard(logger)}
}

// Attach starts persisting transitions of st. The returned function stops it.
func (p *Persister) Attach(ctx context.Context, st Subscriber) (detach func()) {
	return st.Subscribe(func(prev, next store.AppState, a store.Action) {
		if next.ProgressRev == prev.ProgressRev {
			return
		}
		if _, ok := a.(store.HydrateProgress); ok {
			// The record was just read from storage.
			p.mu.Lock()
			p.savedRev = max(p.savedRev, next.ProgressRev)
			p.mu.Unlock()
			return
		}
		_ = p.save(ctx, next, a)
	})
}

func (p *Persister) save(ctx context.Context, next store.AppState, a store.Action) error {
	p.mu.Lock()
	if next.ProgressRev <= p.savedRev {
		p.mu.Unlock()
		return nil
	}
	progress := next.Progress
	err := p.repo.Save(ctx, &progress)
	if err == nil {
		p.savedRev = next.ProgressRev
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.ErrorContext(ctx, "persist progress failed",
			"action", a.Kind(),
			"rev", next.ProgressRev,
			"error", err,
		)
		if p.notify != nil {
			p.notify.Warning(saveFailedMessage)
		}
	}
	return err
}

// SavedRev is the last progress revision written successfully.
func (p *Persister) SavedRev() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.savedRev
}
