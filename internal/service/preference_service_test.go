package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_SetLanguagePersistsAndKeepsTimer(t *testing.T) {
	st := newPlannedStore(t)
	path := filepath.Join(t.TempDir(), settings.FileName)
	prefs := settings.Default()
	prefs.Pomodoro.Work = 50 * time.Minute
	require.NoError(t, settings.Save(path, prefs))

	svc := NewPreferenceService(st, path, nil)
	require.NoError(t, svc.SetLanguage(context.Background(), domain.LangArabic))

	assert.Equal(t, domain.LangArabic, st.State().Language)
	got, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.LangArabic, got.Language)
	assert.Equal(t, 50*time.Minute, got.Pomodoro.Work)
}

func TestPreferenceService_RejectsUnknownValues(t *testing.T) {
	st := newPlannedStore(t)
	path := filepath.Join(t.TempDir(), settings.FileName)
	svc := NewPreferenceService(st, path, nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetLanguage(ctx, "fr"), ErrValidation)
	assert.ErrorIs(t, svc.SetTheme(ctx, "sepia"), ErrValidation)
	assert.Equal(t, domain.LangEnglish, st.State().Language)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing written for rejected input")
}

func TestPreferenceService_ToggleTheme(t *testing.T) {
	st := newPlannedStore(t)
	path := filepath.Join(t.TempDir(), "nested", settings.FileName)
	svc := NewPreferenceService(st, path, nil)
	ctx := context.Background()

	theme, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	got, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, got.Theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestPreferenceService_InMemoryWithoutPath(t *testing.T) {
	st := newPlannedStore(t)
	svc := NewPreferenceService(st, "", nil)

	require.NoError(t, svc.SetTheme(context.Background(), domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, st.State().Theme)
}

func TestPreferenceService_GoTo(t *testing.T) {
	st := newPlannedStore(t)
	svc := NewPreferenceService(st, "", nil)
	ctx := context.Background()

	require.NoError(t, svc.GoTo(ctx, 2, "sun"))
	p := st.State().Progress
	assert.Equal(t, 2, p.CurrentWeek)
	assert.Equal(t, "sun", p.CurrentDay)

	// Keeps the current day when the target week has it.
	require.NoError(t, svc.GoTo(ctx, 1, ""))
	p = st.State().Progress
	assert.Equal(t, 1, p.CurrentWeek)
	assert.Equal(t, "sun", p.CurrentDay)

	assert.ErrorIs(t, svc.GoTo(ctx, 3, "sat"), ErrNotFound)
	assert.ErrorIs(t, svc.GoTo(ctx, 1, "mon"), ErrNotFound)
	assert.Equal(t, 1, st.State().Progress.CurrentWeek)
}
