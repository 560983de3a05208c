package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/progressmate/internal/curriculum"
	"github.com/alexanderramin/progressmate/internal/repository"
	"github.com/alexanderramin/progressmate/internal/settings"
	"github.com/alexanderramin/progressmate/internal/store"
)

const (
	planMissingMessage    = "Learning plan could not be loaded"
	progressFailedMessage = "Saved progress could not be read; starting fresh"
	settingsFailedMessage = "Settings file is invalid; using defaults"
)

// BootstrapPaths locates the files read at startup.
type BootstrapPaths struct {
	PlanPath     string
	SettingsPath string
}

type appService struct {
	st       StateStore
	progress repository.ProgressRepo
	notify   Notifier
	logger   *slog.Logger
	paths    BootstrapPaths
	observer UseCaseObserver
}

func NewAppService(
	st StateStore,
	progress repository.ProgressRepo,
	notify Notifier,
	logger *slog.Logger,
	paths BootstrapPaths,
	observers ...UseCaseObserver,
) AppService {
	return &appService{
		st:       st,
		progress: progress,
		notify:   notify,
		logger:   loggerOrDiscard(logger),
		paths:    paths,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Bootstrap restores preferences and progress and loads the curriculum.
// None of the three is fatal: each failure is logged, toasted and replaced
// by its default, and Loading always ends false.
func (s *appService) Bootstrap(ctx context.Context) (_ *BootstrapResult, err error) {
	startedAt := time.Now()
	result := &BootstrapResult{Settings: settings.Default()}
	defer func() {
		observe(ctx, s.observer, "app.bootstrap", startedAt, map[string]any{
			"plan_loaded":       result.PlanLoaded,
			"progress_restored": result.ProgressRestored,
			"warnings":          len(result.Warnings),
		}, &err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	s.restoreSettings(ctx, result)
	s.restoreProgress(ctx, result)
	s.loadPlan(ctx, result)
	return result, nil
}

func (s *appService) restoreSettings(ctx context.Context, result *BootstrapResult) {
	if s.paths.SettingsPath == "" {
		return
	}
	prefs, err := settings.Load(s.paths.SettingsPath)
	if err != nil {
		s.logger.WarnContext(ctx, "settings load failed", "path", s.paths.SettingsPath, "error", err)
		s.warn(result, settingsFailedMessage)
	}
	result.Settings = prefs
	s.st.Dispatch(store.SetLanguage{Language: prefs.Language})
	s.st.Dispatch(store.SetTheme{Theme: prefs.Theme})
}

func (s *appService) restoreProgress(ctx context.Context, result *BootstrapResult) {
	if s.progress == nil {
		return
	}
	p, err := s.progress.Load(ctx)
	switch {
	case err == nil:
		s.st.Dispatch(store.HydrateProgress{Progress: *p})
		result.ProgressRestored = true
	case errors.Is(err, repository.ErrNotFound):
		s.logger.DebugContext(ctx, "no stored progress, starting fresh")
	default:
		s.logger.WarnContext(ctx, "progress load failed", "error", err)
		s.warn(result, progressFailedMessage)
	}
}

func (s *appService) loadPlan(ctx context.Context, result *BootstrapResult) {
	plan, err := curriculum.Load(s.paths.PlanPath)
	if err != nil {
		s.logger.WarnContext(ctx, "plan load failed", "path", s.paths.PlanPath, "error", err)
		s.warn(result, planMissingMessage)
		s.st.Dispatch(store.SetPlan{Plan: nil})
		return
	}
	s.st.Dispatch(store.SetPlan{Plan: plan})
	result.PlanLoaded = true
}

func (s *appService) warn(result *BootstrapResult, message string) {
	result.Warnings = append(result.Warnings, message)
	if s.notify != nil {
		s.notify.Warning(message)
	}
}
