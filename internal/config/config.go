// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/progressmate/internal/pomodoro"
)

// Storage selects the progress backend.
type Storage string

const (
	StorageSQLite Storage = "sqlite"
	StorageDiskv  Storage = "diskv"
)

// Config holds file locations and runtime options.
type Config struct {
	Home         string
	DBPath       string
	DiskvDir     string
	PlanPath     string
	SettingsPath string
	Storage      Storage

	// LogDest is "", "stderr" or a file path. Empty disables logging.
	LogDest  string
	LogLevel slog.Level

	// Pomodoro overrides the durations from the settings file when non-zero.
	Pomodoro pomodoro.Durations
}

// DefaultConfig lays every file out under home.
func DefaultConfig(home string) Config {
	return Config{
		Home:         home,
		DBPath:       filepath.Join(home, "progressmate.db"),
		DiskvDir:     filepath.Join(home, "progress"),
		PlanPath:     filepath.Join(home, "plan.json"),
		SettingsPath: filepath.Join(home, "settings.yaml"),
		Storage:      StorageSQLite,
		LogLevel:     slog.LevelInfo,
	}
}

// Load reads configuration from PROGRESSMATE_* environment variables,
// falling back to defaults under ~/.progressmate for any unset value.
func Load() (Config, error) {
	home := os.Getenv("PROGRESSMATE_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".progressmate")
	}
	cfg := DefaultConfig(home)

	if v := os.Getenv("PROGRESSMATE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PROGRESSMATE_PLAN"); v != "" {
		cfg.PlanPath = v
	}
	if v := os.Getenv("PROGRESSMATE_SETTINGS"); v != "" {
		cfg.SettingsPath = v
	}
	if v := os.Getenv("PROGRESSMATE_STORAGE"); v != "" {
		switch s := Storage(strings.ToLower(v)); s {
		case StorageSQLite, StorageDiskv:
			cfg.Storage = s
		default:
			return cfg, fmt.Errorf("PROGRESSMATE_STORAGE: unknown backend %q (want sqlite or diskv)", v)
		}
	}
	if v := os.Getenv("PROGRESSMATE_LOG"); v != "" {
		cfg.LogDest = v
	}
	if v := os.Getenv("PROGRESSMATE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}

	cfg.Pomodoro.Work = minutesEnv("PROGRESSMATE_WORK_MIN")
	cfg.Pomodoro.ShortBreak = minutesEnv("PROGRESSMATE_SHORT_BREAK_MIN")
	cfg.Pomodoro.LongBreak = minutesEnv("PROGRESSMATE_LONG_BREAK_MIN")

	return cfg, nil
}

// PomodoroDurations layers the environment overrides on top of base.
func (c Config) PomodoroDurations(base pomodoro.Durations) pomodoro.Durations {
	if c.Pomodoro.Work > 0 {
		base.Work = c.Pomodoro.Work
	}
	if c.Pomodoro.ShortBreak > 0 {
		base.ShortBreak = c.Pomodoro.ShortBreak
	}
	if c.Pomodoro.LongBreak > 0 {
		base.LongBreak = c.Pomodoro.LongBreak
	}
	return base
}

// NewLogger builds the application logger. The returned closer releases a
// log file when one was opened.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	switch c.LogDest {
	case "":
		return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil), nil
	case "stderr":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(c.LogDest), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogDest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func minutesEnv(name string) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Minute
}
