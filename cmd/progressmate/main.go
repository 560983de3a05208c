package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/progressmate/internal/cli"
	"github.com/alexanderramin/progressmate/internal/config"
	"github.com/alexanderramin/progressmate/internal/db"
	"github.com/alexanderramin/progressmate/internal/repository"
	"github.com/alexanderramin/progressmate/internal/service"
	"github.com/alexanderramin/progressmate/internal/store"
	"github.com/alexanderramin/progressmate/internal/toast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Pick the progress backend
	progressRepo, closeRepo, err := openProgressRepo(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo.Close()

	st := store.New(store.InitialState())
	toasts := toast.New(st)
	defer toasts.Close()

	observer := service.NewSlogUseCaseObserver(logger)

	// Every progress change is written through the persister.
	persister := service.NewPersister(progressRepo, toasts, logger)
	detach := persister.Attach(ctx, st)
	defer detach()

	appSvc := service.NewAppService(st, progressRepo, toasts, logger, service.BootstrapPaths{
		PlanPath:     cfg.PlanPath,
		SettingsPath: cfg.SettingsPath,
	}, observer)
	boot, err := appSvc.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("starting up: %w", err)
	}

	app := &cli.App{
		Store:    st,
		Tasks:    service.NewTaskService(st, toasts, observer),
		Prefs:    service.NewPreferenceService(st, cfg.SettingsPath, logger, observer),
		Notes:    service.NewNoteService(st, toasts, nil, observer),
		Journal:  service.NewJournalService(st, toasts, nil, observer),
		Skills:   service.NewSkillService(st, toasts, observer),
		Focus:    service.NewFocusService(st, toasts, observer),
		Status:   service.NewStatusService(st, nil),
		Pomodoro: cfg.PomodoroDurations(boot.Settings.Pomodoro),
		PlanPath: cfg.PlanPath,
	}

	// Forms and the full-screen timer need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

func openProgressRepo(cfg config.Config, logger *slog.Logger) (repository.ProgressRepo, io.Closer, error) {
	switch cfg.Storage {
	case config.StorageDiskv:
		logger.Debug("using diskv progress store", "dir", cfg.DiskvDir)
		return repository.NewDiskvProgressRepo(cfg.DiskvDir), io.NopCloser(nil), nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("using sqlite progress store", "path", cfg.DBPath)
		return repository.NewTxProgressRepo(db.NewSQLiteUnitOfWork(database)), database, nil
	}
}
