package service

import (
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/alexanderramin/progressmate/internal/testutil"
)

type notice struct {
	Severity domain.ToastSeverity
	Message  string
}

// recordingNotifier captures toasts without scheduling expiry.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) add(sev domain.ToastSeverity, msg string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{Severity: sev, Message: msg})
	return msg
}

func (r *recordingNotifier) Success(msg string) string { return r.add(domain.ToastSuccess, msg) }
func (r *recordingNotifier) Error(msg string) string   { return r.add(domain.ToastError, msg) }
func (r *recordingNotifier) Info(msg string) string    { return r.add(domain.ToastInfo, msg) }
func (r *recordingNotifier) Warning(msg string) string { return r.add(domain.ToastWarning, msg) }

func (r *recordingNotifier) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notice(nil), r.notices...)
}

func (r *recordingNotifier) last() notice {
	all := r.all()
	if len(all) == 0 {
		return notice{}
	}
	return all[len(all)-1]
}

// newPlannedStore returns a store holding a two-week test plan.
func newPlannedStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.InitialState())
	st.Dispatch(store.SetPlan{Plan: testutil.NewTestPlan(2)})
	return st
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
