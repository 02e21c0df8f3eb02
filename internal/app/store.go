package app

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
	"github.com/sandeepkv93/clockd/internal/storage"
)

// alarmStore adapts the SQLite repository to the UI's AlarmStore.
type alarmStore struct {
	repo storage.Repository
}

func (s alarmStore) SaveAlarm(ctx context.Context, a model.Alarm) error {
	return s.repo.SaveAlarm(ctx, toStorage(a))
}

func (s alarmStore) DeleteAlarm(ctx context.Context, id model.ID) error {
	return s.repo.DeleteAlarm(ctx, int64(id))
}

func toStorage(a model.Alarm) storage.Alarm {
	return storage.Alarm{
		ID:            int64(a.ID),
		Label:         a.Label,
		Hour:          int(a.TriggerTime.Hour),
		Minute:        int(a.TriggerTime.Minute),
		Second:        int(a.TriggerTime.Second),
		Days:          int(a.TriggerDays),
		Kind:          string(a.Kind),
		Sound:         a.Sound,
		SnoozeMinutes: int(a.SnoozeMinutes),
	}
}

func fromStorage(in storage.Alarm) (model.Alarm, error) {
	if in.ID < int64(model.MinID) || in.ID >= int64(model.MaxID) {
		return model.Alarm{}, fmt.Errorf("alarm id %d out of range", in.ID)
	}
	if in.Days < 0 || in.Days > 0xFF || in.SnoozeMinutes < 0 {
		return model.Alarm{}, fmt.Errorf("alarm %d: corrupt row", in.ID)
	}
	a := model.Alarm{
		ID:   model.ID(in.ID),
		Kind: model.Kind(in.Kind),
		TriggerTime: model.TimeOfDay{
			Hour:   uint8(in.Hour),
			Minute: uint8(in.Minute),
			Second: uint8(in.Second),
		},
		TriggerDays:   model.DaySet(in.Days),
		SnoozeMinutes: uint(in.SnoozeMinutes),
		Label:         in.Label,
		Sound:         in.Sound,
		LastTriggered: model.NeverTriggered,
	}
	if err := a.Validate(); err != nil {
		return model.Alarm{}, fmt.Errorf("alarm %d: %w", in.ID, err)
	}
	return a, nil
}

// LoadAlarms registers every persisted alarm with engine in creation order
// and returns how many were loaded.
func LoadAlarms(ctx context.Context, repo storage.Repository, engine *scheduler.Engine) (int, error) {
	rows, err := repo.ListAlarms(ctx, storage.AlarmListFilter{})
	if err != nil {
		return 0, fmt.Errorf("list alarms: %w", err)
	}
	for _, row := range rows {
		a, err := fromStorage(row)
		if err != nil {
			return 0, err
		}
		if _, err := engine.AddAlarmInfo(a); err != nil {
			return 0, fmt.Errorf("register alarm %d: %w", row.ID, err)
		}
	}
	return len(rows), nil
}
