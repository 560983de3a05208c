// Package settings persists user preferences (language, theme and pomodoro
// lengths) in a YAML file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/progressmate/internal/domain"
	"github.com/alexanderramin/progressmate/internal/pomodoro"
)

// FileName is the settings file name inside the data directory.
const FileName = "settings.yaml"

// Settings are the preferences that survive restarts.
type Settings struct {
	Language domain.Language
	Theme    domain.Theme
	Pomodoro pomodoro.Durations
}

type yamlSettings struct {
	Language          string `yaml:"language"`
	Theme             string `yaml:"theme"`
	WorkMinutes       int    `yaml:"work_minutes,omitempty"`
	ShortBreakMinutes int    `yaml:"short_break_minutes,omitempty"`
	LongBreakMinutes  int    `yaml:"long_break_minutes,omitempty"`
}

// Default returns English, light theme and the 25/5/15 timer.
func Default() Settings {
	return Settings{
		Language: domain.LangEnglish,
		Theme:    domain.ThemeLight,
		Pomodoro: pomodoro.DefaultDurations(),
	}
}

// Load reads settings from path. A missing file yields Default with no
// error; unknown or invalid values fall back to their default.
func Load(path string) (Settings, error) {
	s := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings file: %w", err)
	}

	var file yamlSettings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return s, fmt.Errorf("parse settings yaml: %w", err)
	}

	apply(&s, file)
	return s, nil
}

// Save writes s to path, creating its directory when needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	file := yamlSettings{
		Language:          string(s.Language),
		Theme:             string(s.Theme),
		WorkMinutes:       int(s.Pomodoro.Work / time.Minute),
		ShortBreakMinutes: int(s.Pomodoro.ShortBreak / time.Minute),
		LongBreakMinutes:  int(s.Pomodoro.LongBreak / time.Minute),
	}

	out, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func apply(s *Settings, file yamlSettings) {
	switch domain.Language(file.Language) {
	case domain.LangEnglish, domain.LangArabic:
		s.Language = domain.Language(file.Language)
	}
	switch domain.Theme(file.Theme) {
	case domain.ThemeLight, domain.ThemeDark:
		s.Theme = domain.Theme(file.Theme)
	}
	if file.WorkMinutes > 0 {
		s.Pomodoro.Work = time.Duration(file.WorkMinutes) * time.Minute
	}
	if file.ShortBreakMinutes > 0 {
		s.Pomodoro.ShortBreak = time.Duration(file.ShortBreakMinutes) * time.Minute
	}
	if file.LongBreakMinutes > 0 {
		s.Pomodoro.LongBreak = time.Duration(file.LongBreakMinutes) * time.Minute
	}
}
