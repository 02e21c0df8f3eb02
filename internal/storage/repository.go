package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateAlarm(ctx context.Context, in Alarm) error
	GetAlarm(ctx context.Context, id int64) (Alarm, error)
	UpdateAlarm(ctx context.Context, in Alarm) error
	// SaveAlarm inserts or replaces the row with in.ID.
	SaveAlarm(ctx context.Context, in Alarm) error
	DeleteAlarm(ctx context.Context, id int64) error
	ListAlarms(ctx context.Context, filter AlarmListFilter) ([]Alarm, error)
}
