package scheduler

import (
	"fmt"
	"slices"

	"github.com/sandeepkv93/clockd/internal/model"
)

// SnoozeAlarm registers a snooze of original, snoozeMinutes after its
// trigger time, replacing any pending snooze.
func (s *Scheduler) SnoozeAlarm(original model.Alarm) (model.Alarm, error) {
	if err := original.TriggerTime.Validate(); err != nil {
		return model.Alarm{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	s.alarms = slices.DeleteFunc(s.alarms, func(a model.Alarm) bool {
		return a.ID == model.SnoozeID
	})

	snoozed := model.Alarm{
		ID:            model.SnoozeID,
		Kind:          model.KindSnoozed,
		TriggerTime:   original.TriggerTime.AddMinutes(original.SnoozeMinutes),
		TriggerDays:   model.Everyday,
		SnoozeMinutes: original.SnoozeMinutes,
		Label:         original.Label,
		Sound:         original.Sound,
		LastTriggered: model.NeverTriggered,
	}
	s.alarms = append(s.alarms, snoozed)
	return snoozed, nil
}

// PendingSnooze returns the current snooze record.
func (s *Scheduler) PendingSnooze() (model.Alarm, bool) {
	return s.AlarmByID(model.SnoozeID)
}

// CancelSnooze drops the pending snooze, if any.
func (s *Scheduler) CancelSnooze() {
	s.DeleteAlarm(model.SnoozeID)
}
