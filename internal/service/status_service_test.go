package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/alexanderramin/progressmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_Report(t *testing.T) {
	st := newPlannedStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	tasks := NewTaskService(st, nil)
	require.NoError(t, tasks.Complete(ctx, "w1-sat-t1"))
	require.NoError(t, tasks.Complete(ctx, "w1-sat-t2"))
	require.NoError(t, tasks.Complete(ctx, "w2-sun-t1"))
	st.Dispatch(store.AddJournalEntry{Entry: testutil.NewTestJournalEntry(1, "sat", "2026-03-07", "a")})
	st.Dispatch(store.AddJournalEntry{Entry: testutil.NewTestJournalEntry(1, "sun", "2026-03-08", "b")})

	report, err := NewStatusService(st, fixedClock(now)).GetStatus(ctx)
	require.NoError(t, err)

	assert.True(t, report.PlanReady)
	assert.Equal(t, 3, report.Summary.CompletedTasks)
	assert.Equal(t, 8, report.Summary.TotalTasks)
	assert.InDelta(t, 37.5, report.Summary.OverallProgress, 0.001)
	assert.InDelta(t, 1.5, report.Summary.TotalLearningHours, 0.001)
	assert.Equal(t, 2, report.Summary.CurrentStreak)
	assert.Equal(t, 2, report.Summary.JournalEntriesCount)

	require.Len(t, report.Weeks, 2)
	assert.Equal(t, WeekStatus{Week: 1, Title: report.Weeks[0].Title, Progress: 50, Done: 2, Total: 4}, report.Weeks[0])
	assert.Equal(t, 1, report.Weeks[1].Done)

	require.Len(t, report.ByType, len(domain.TaskTypes))
	assert.Equal(t, domain.TaskBlueTeam, report.ByType[0].Type)
	assert.Equal(t, 8, report.ByType[0].Total)
	assert.Equal(t, 3, report.ByType[0].Completed)
}

func TestStatusService_WithoutPlan(t *testing.T) {
	st := store.New(store.InitialState())
	st.Dispatch(store.SetPlan{Plan: nil})

	report, err := NewStatusService(st, nil).GetStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, report.PlanReady)
	assert.Empty(t, report.Weeks)
	assert.Zero(t, report.Summary.OverallProgress)
}
