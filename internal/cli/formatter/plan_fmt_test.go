package formatter

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/service"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/alexanderramin/progressmate/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func plannedState(completed ...string) store.AppState {
	s := store.Reduce(store.InitialState(), store.SetPlan{Plan: testutil.NewTestPlan(2)})
	for _, id := range completed {
		s = store.Reduce(s, store.CompleteTask{TaskID: id, TimeSpent: 30})
	}
	return s
}

func TestFormatPlanOverview(t *testing.T) {
	f := New(domain.ThemeLight, domain.LangEnglish)
	out := f.FormatPlanOverview(plannedState("w1-sat-t1", "w1-sat-t2"))

	assert.Contains(t, out, "LEARNING PLAN")
	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "Overall")
}

func TestFormatPlanOverview_NoPlan(t *testing.T) {
	f := New(domain.ThemeLight, domain.LangEnglish)
	out := f.FormatPlanOverview(store.Reduce(store.InitialState(), store.SetPlan{}))
	assert.Contains(t, out, "No learning plan is loaded yet.")
}

func TestFormatDay(t *testing.T) {
	s := plannedState("w1-sat-t1")
	w := s.Plan.FindWeek(1)
	d := w.FindDay("sat")

	out := New(domain.ThemeDark, domain.LangEnglish).FormatDay(s, w, d)
	assert.Contains(t, out, "[✔]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "w1-sat-t2")
	assert.Contains(t, out, "30m logged")
	assert.Contains(t, out, "Reading for sat")
	assert.Contains(t, out, "What did you learn?")
}

func TestFormatDay_Arabic(t *testing.T) {
	s := plannedState()
	w := s.Plan.FindWeek(1)
	out := New(domain.ThemeLight, domain.LangArabic).FormatDay(s, w, w.FindDay("sun"))
	assert.Contains(t, out, "ماذا تعلمت؟")
}

func TestFormatWeek(t *testing.T) {
	s := plannedState("w2-sun-t1")
	w := s.Plan.FindWeek(2)
	out := New(domain.ThemeLight, domain.LangEnglish).FormatWeek(s, w)

	assert.Contains(t, out, "WEEK 2")
	assert.Contains(t, out, "Topic sun")
	assert.Contains(t, out, "1/2")
}

func TestFormatStats(t *testing.T) {
	s := plannedState("w1-sat-t1")
	st := store.New(s)
	report, err := service.NewStatusService(st, func() time.Time { return time.Now() }).GetStatus(context.Background())
	assert.NoError(t, err)

	out := New(domain.ThemeLight, domain.LangEnglish).FormatStats(report)
	assert.Contains(t, out, "ACHIEVEMENTS")
	assert.Contains(t, out, "1/8")
	assert.Contains(t, out, "Blue Team")
	assert.Contains(t, out, "0.5h")
	assert.NotContains(t, out, "Red Team", "types without tasks are hidden")
}
