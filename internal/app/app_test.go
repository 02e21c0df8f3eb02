package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/clockd/internal/config"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
	"github.com/sandeepkv93/clockd/internal/storage"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.DatabasePath = filepath.Join(dir, "clockd.db")
	cfg.Log.File = filepath.Join(dir, "clockd.log")
	return cfg
}

func TestStoreRoundTripThroughReload(t *testing.T) {
	cfg := testConfig(t)
	ctx := t.Context()

	first, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	store := alarmStore{repo: first.repo}
	engine := first.Engine()
	ids := make([]model.ID, 0, 3)
	for _, in := range []struct {
		label string
		at    model.TimeOfDay
		days  model.DaySet
	}{
		{"gym", model.TimeOfDay{Hour: 6, Minute: 15}, model.Weekdays},
		{"once", model.TimeOfDay{Hour: 9, Minute: 0, Second: 30}, model.OneTime},
		{"off", model.TimeOfDay{Hour: 22}, model.NoDay},
	} {
		id, addErr := engine.AddAlarm(in.label, in.at, in.days, "bell.wav", 7)
		if addErr != nil {
			t.Fatalf("add alarm: %v", addErr)
		}
		a, _ := engine.AlarmByID(id)
		if err := store.SaveAlarm(ctx, a); err != nil {
			t.Fatalf("save alarm: %v", err)
		}
		ids = append(ids, id)
	}
	if err := store.DeleteAlarm(ctx, ids[2]); err != nil {
		t.Fatalf("delete alarm: %v", err)
	}
	want := engine.Alarms()[:2]
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })
	got := second.Engine().Alarms()
	if len(got) != len(want) {
		t.Fatalf("expected %d alarms after reload, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("alarm %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}

	id, err := second.Engine().AddAlarm("new", model.TimeOfDay{Hour: 1}, model.Monday, "", 0)
	if err != nil {
		t.Fatalf("add after reload: %v", err)
	}
	if id <= ids[1] {
		t.Fatalf("expected fresh id above reloaded ids, got %d", id)
	}
}

func TestLoadAlarmsRejectsCorruptRow(t *testing.T) {
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "clockd.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx := context.Background()
	if err := repo.CreateAlarm(ctx, storage.Alarm{ID: 1, Label: "bad", Hour: 7, Kind: "Sometimes"}); err != nil {
		t.Fatalf("create alarm: %v", err)
	}
	engine := scheduler.NewEngine(scheduler.New(), 1)
	if _, err := LoadAlarms(ctx, repo, engine); !errors.Is(err, model.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
	if len(engine.Alarms()) != 0 {
		t.Fatal("expected nothing registered")
	}
}

func TestFromStorageRejectsOutOfRangeID(t *testing.T) {
	if _, err := fromStorage(storage.Alarm{ID: 0, Kind: "Active"}); err == nil {
		t.Fatal("expected error for snooze id")
	}
	if _, err := fromStorage(storage.Alarm{ID: 70000, Kind: "Active"}); err == nil {
		t.Fatal("expected error for id above range")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Setenv("CLOCKD_TICK_INTERVAL", "soon")
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := New(path); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestModelUsesAppEngine(t *testing.T) {
	a, err := NewWithConfig(testConfig(t))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	m := a.Model()
	if m.Engine != a.Engine() || m.Store == nil {
		t.Fatal("expected model bound to app engine and store")
	}
}
