package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

const alarmColumns = `id, label, hour, minute, second, days, kind, sound, snooze_minutes, created_at, updated_at`

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// OpenSQLite opens the database at path and applies the up migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateAlarm(ctx context.Context, in Alarm) error {
	created := in.CreatedAt
	if created.IsZero() {
		created = r.now()
	}
	updated := in.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alarms (`+alarmColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Label, in.Hour, in.Minute, in.Second, in.Days, in.Kind, in.Sound, in.SnoozeMinutes,
		mustTime(created), mustTime(updated),
	)
	return err
}

func (r *SQLiteRepository) GetAlarm(ctx context.Context, id int64) (Alarm, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+alarmColumns+` FROM alarms WHERE id = ?`, id)
	item, err := scanAlarm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Alarm{}, ErrNotFound
		}
		return Alarm{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateAlarm(ctx context.Context, in Alarm) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alarms
		SET label = ?, hour = ?, minute = ?, second = ?, days = ?, kind = ?, sound = ?, snooze_minutes = ?, updated_at = ?
		WHERE id = ?`,
		in.Label, in.Hour, in.Minute, in.Second, in.Days, in.Kind, in.Sound, in.SnoozeMinutes, mustTime(r.now()), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) SaveAlarm(ctx context.Context, in Alarm) error {
	err := r.UpdateAlarm(ctx, in)
	if errors.Is(err, ErrNotFound) {
		return r.CreateAlarm(ctx, in)
	}
	return err
}

func (r *SQLiteRepository) DeleteAlarm(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alarms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// ListAlarms returns alarms in id order, which is their creation order.
func (r *SQLiteRepository) ListAlarms(ctx context.Context, filter AlarmListFilter) ([]Alarm, error) {
	query := `SELECT ` + alarmColumns + ` FROM alarms`
	args := make([]any, 0, 3)
	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, filter.Kind)
	}
	query += ` ORDER BY id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Alarm, 0)
	for rows.Next() {
		item, scanErr := scanAlarm(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAlarm(s scanner) (Alarm, error) {
	var out Alarm
	var created, updated string
	if err := s.Scan(&out.ID, &out.Label, &out.Hour, &out.Minute, &out.Second, &out.Days, &out.Kind, &out.Sound, &out.SnoozeMinutes, &created, &updated); err != nil {
		return Alarm{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Alarm{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Alarm{}, err
	}
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
