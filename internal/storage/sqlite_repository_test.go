package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "clockd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestAlarmCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2026-02-09T12:00:00Z")

	alarm := Alarm{
		ID:            3,
		Label:         "Wake up",
		Hour:          6,
		Minute:        45,
		Second:        30,
		Days:          0b0011111,
		Kind:          "Active",
		Sound:         "sounds/birds.wav",
		SnoozeMinutes: 9,
		CreatedAt:     created,
	}
	if err := repo.CreateAlarm(ctx, alarm); err != nil {
		t.Fatalf("create alarm: %v", err)
	}

	got, err := repo.GetAlarm(ctx, alarm.ID)
	if err != nil {
		t.Fatalf("get alarm: %v", err)
	}
	if got.Label != alarm.Label || got.Hour != 6 || got.Minute != 45 || got.Second != 30 {
		t.Fatalf("unexpected alarm get result: %#v", got)
	}
	if got.Days != alarm.Days || got.Sound != alarm.Sound || got.SnoozeMinutes != 9 || got.Kind != "Active" {
		t.Fatalf("unexpected alarm fields: %#v", got)
	}
	if !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
		t.Fatalf("unexpected timestamps: %#v", got)
	}

	alarm.Label = "Wake up later"
	alarm.Kind = "Inactive"
	alarm.Days = 0
	if err := repo.UpdateAlarm(ctx, alarm); err != nil {
		t.Fatalf("update alarm: %v", err)
	}

	inactive, err := repo.ListAlarms(ctx, AlarmListFilter{Kind: "Inactive"})
	if err != nil {
		t.Fatalf("list alarms: %v", err)
	}
	if len(inactive) != 1 || inactive[0].Label != "Wake up later" {
		t.Fatalf("unexpected inactive list: %#v", inactive)
	}

	if err := repo.DeleteAlarm(ctx, alarm.ID); err != nil {
		t.Fatalf("delete alarm: %v", err)
	}
	_, err = repo.GetAlarm(ctx, alarm.ID)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAlarmNotFoundErrors(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.UpdateAlarm(ctx, Alarm{ID: 99, Kind: "Active"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.DeleteAlarm(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestSaveAlarmUpserts(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	in := Alarm{ID: 5, Label: "first", Hour: 8, Days: 1, Kind: "Active"}
	if err := repo.SaveAlarm(ctx, in); err != nil {
		t.Fatalf("save insert: %v", err)
	}
	in.Label = "second"
	if err := repo.SaveAlarm(ctx, in); err != nil {
		t.Fatalf("save update: %v", err)
	}
	all, err := repo.ListAlarms(ctx, AlarmListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].Label != "second" {
		t.Fatalf("unexpected alarms after upsert: %#v", all)
	}
}

func TestListAlarmsOrderAndPagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, id := range []int64{4, 1, 3, 2} {
		if err := repo.CreateAlarm(ctx, Alarm{ID: id, Hour: int(id), Kind: "Active"}); err != nil {
			t.Fatalf("create %d: %v", id, err)
		}
	}

	all, err := repo.ListAlarms(ctx, AlarmListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, a := range all {
		if a.ID != int64(i+1) {
			t.Fatalf("expected id order, got %#v", all)
		}
	}

	page, err := repo.ListAlarms(ctx, AlarmListFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].ID != 2 || page[1].ID != 3 {
		t.Fatalf("unexpected page: %#v", page)
	}

	tail, err := repo.ListAlarms(ctx, AlarmListFilter{Offset: 3})
	if err != nil {
		t.Fatalf("list tail: %v", err)
	}
	if len(tail) != 1 || tail[0].ID != 4 {
		t.Fatalf("unexpected tail: %#v", tail)
	}
}

func TestSchemaRejectsInvalidTime(t *testing.T) {
	repo := setupRepo(t)
	err := repo.CreateAlarm(context.Background(), Alarm{ID: 1, Hour: 24, Kind: "Active"})
	if err == nil {
		t.Fatal("expected check constraint failure for hour 24")
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()
	if _, err := repo.ListAlarms(context.Background(), AlarmListFilter{}); err != nil {
		t.Fatalf("list after open: %v", err)
	}
}
