package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/settings"
	"github.com/alexanderramin/progressmate/internal/store"
)

type preferenceService struct {
	st           StateStore
	settingsPath string
	logger       *slog.Logger
	observer     UseCaseObserver
}

// NewPreferenceService changes language, theme and the plan cursor. Language
// and theme are also written to the settings file at settingsPath; an empty
// path keeps them in memory only.
func NewPreferenceService(st StateStore, settingsPath string, logger *slog.Logger, observers ...UseCaseObserver) PreferenceService {
	return &preferenceService{
		st:           st,
		settingsPath: settingsPath,
		logger:       loggerOrDiscard(logger),
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *preferenceService) SetLanguage(ctx context.Context, lang domain.Language) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "preference.set_language", startedAt, map[string]any{"language": string(lang)}, &err)

	switch lang {
	case domain.LangEnglish, domain.LangArabic:
	default:
		return fmt.Errorf("unknown language %q: %w", lang, ErrValidation)
	}
	s.st.Dispatch(store.SetLanguage{Language: lang})
	return s.persist(ctx)
}

func (s *preferenceService) SetTheme(ctx context.Context, theme domain.Theme) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "preference.set_theme", startedAt, map[string]any{"theme": string(theme)}, &err)

	switch theme {
	case domain.ThemeLight, domain.ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q: %w", theme, ErrValidation)
	}
	s.st.Dispatch(store.SetTheme{Theme: theme})
	return s.persist(ctx)
}

func (s *preferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next := s.st.State().Theme.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return s.st.State().Theme, err
	}
	return next, nil
}

// GoTo moves the current week/day cursor. An empty day keeps the current one
// when the new week has it and otherwise picks the week's first day.
func (s *preferenceService) GoTo(ctx context.Context, week int, day string) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "preference.goto", startedAt, map[string]any{"week": week, "day": day}, &err)

	state := s.st.State()
	w := state.Plan.FindWeek(week)
	if w == nil {
		return fmt.Errorf("week %d: %w", week, ErrNotFound)
	}
	if day == "" {
		day = state.Progress.CurrentDay
		if w.FindDay(day) == nil && len(w.Days) > 0 {
			day = w.Days[0].Key
		}
	}
	if w.FindDay(day) == nil {
		return fmt.Errorf("week %d day %q: %w", week, day, ErrNotFound)
	}

	if state.Progress.CurrentWeek != week {
		s.st.Dispatch(store.SetCurrentWeek{Week: week})
	}
	if state.Progress.CurrentDay != day {
		s.st.Dispatch(store.SetCurrentDay{Day: day})
	}
	return nil
}

// persist rewrites the settings file, keeping whatever pomodoro lengths it
// already holds.
func (s *preferenceService) persist(ctx context.Context) error {
	if s.settingsPath == "" {
		return nil
	}
	current, err := settings.Load(s.settingsPath)
	if err != nil {
		s.logger.WarnContext(ctx, "replacing unreadable settings file", "path", s.settingsPath, "error", err)
	}
	state := s.st.State()
	current.Language = state.Language
	current.Theme = state.Theme
	if err := settings.Save(s.settingsPath, current); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
