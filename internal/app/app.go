// Package app wires configuration, logging, storage, the alarm engine and
// the terminal UI into one runnable program.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/clockd/internal/config"
	"github.com/sandeepkv93/clockd/internal/logging"
	"github.com/sandeepkv93/clockd/internal/scheduler"
	"github.com/sandeepkv93/clockd/internal/storage"
	"github.com/sandeepkv93/clockd/internal/update"
)

const (
	notifyEvery = 10 * time.Second
	notifyBurst = 3
)

type App struct {
	cfg       config.Config
	log       zerolog.Logger
	logCloser io.Closer
	repo      *storage.SQLiteRepository
	engine    *scheduler.Engine
}

// New loads the config at cfgPath, applies CLOCKD_* overrides and opens
// the alarm database.
func New(cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg = config.FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg config.Config) (*App, error) {
	interval, err := cfg.Interval()
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
		File:    cfg.Log.File,
	})
	if err != nil {
		return nil, err
	}

	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	engine := scheduler.NewEngine(scheduler.New(), cfg.EventBuffer,
		scheduler.WithInterval(interval),
		scheduler.WithLogger(log.With().Str("comp", "engine").Logger()),
		scheduler.WithDefaultSnooze(cfg.DefaultSnoozeMinutes),
	)

	n, err := LoadAlarms(context.Background(), repo, engine)
	if err != nil {
		_ = repo.Close()
		_ = closer.Close()
		return nil, err
	}
	log.Info().Int("alarms", n).Str("db", cfg.DatabasePath).Msg("alarms loaded")

	return &App{cfg: cfg, log: log, logCloser: closer, repo: repo, engine: engine}, nil
}

func (a *App) Engine() *scheduler.Engine {
	return a.engine
}

// Model builds the UI model bound to the app's engine and store.
func (a *App) Model() update.Model {
	return update.NewModel(a.engine,
		update.WithStore(alarmStore{repo: a.repo}),
		update.WithNotifier(update.NewRateLimitedNotifier(update.ExecDesktopNotifier{}, notifyEvery, notifyBurst)),
		update.WithLogger(a.log.With().Str("comp", "ui").Logger()),
	)
}

// Run starts the engine and blocks in the terminal UI until the user quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.engine.Start()
	defer a.engine.Stop()

	program := tea.NewProgram(a.Model(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	a.log.Info().Uint64("dropped_events", a.engine.Dropped()).Msg("clockd stopped")
	return nil
}

func (a *App) Close() error {
	a.engine.Stop()
	return errors.Join(a.repo.Close(), a.logCloser.Close())
}
