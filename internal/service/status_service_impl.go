package service

import (
	"context"
	"time"
)

type statusService struct {
	st  StateStore
	now func() time.Time
}

// NewStatusService reports achievements. A nil clock uses time.Now; it
// decides which day the journal streak ends on.
func NewStatusService(st StateStore, clock func() time.Time) StatusService {
	return &statusService{st: st, now: clockOrNow(clock)}
}

func (s *statusService) GetStatus(_ context.Context) (*StatusReport, error) {
	state := s.st.State()
	report := &StatusReport{
		Summary:   state.Stats(s.now()),
		ByType:    state.TaskTypeBreakdown(),
		PlanReady: state.Plan != nil,
	}
	if state.Plan == nil {
		return report, nil
	}

	for _, w := range state.Plan.Weeks {
		ws := WeekStatus{
			Week:     w.Week,
			Title:    w.Title,
			Progress: state.WeekProgress(w),
		}
		for _, t := range w.Tasks() {
			ws.Total++
			if state.IsTaskCompleted(t.ID) {
				ws.Done++
			}
		}
		report.Weeks = append(report.Weeks, ws)
	}
	return report, nil
}
