package scheduler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sandeepkv93/clockd/internal/model"
)

var (
	ErrInvalidArgument = errors.New("scheduler: invalid argument")
	ErrIndexOutOfRange = errors.New("scheduler: index out of range")
	ErrIDsExhausted    = errors.New("scheduler: no alarm ids left")
	ErrDuplicateID     = errors.New("scheduler: duplicate alarm id")
)

// Scheduler is an insertion-ordered alarm registry. It is not safe for
// concurrent use; Engine serializes access when one is shared.
type Scheduler struct {
	alarms []model.Alarm
	nextID model.ID
}

func New() *Scheduler {
	return &Scheduler{
		alarms: make([]model.Alarm, 0),
		nextID: model.MinID,
	}
}

// Clear drops every alarm and resets the id counter.
func (s *Scheduler) Clear() {
	if s == nil {
		return
	}
	s.alarms = s.alarms[:0]
	s.nextID = model.MinID
}

func (s *Scheduler) NextID() model.ID {
	return s.nextID
}

func (s *Scheduler) AddAlarm(label string, at model.TimeOfDay, days model.DaySet, sound string, snoozeMinutes uint) (model.ID, error) {
	if err := at.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	id, err := s.allocateID()
	if err != nil {
		return 0, err
	}
	s.alarms = append(s.alarms, model.Alarm{
		ID:            id,
		Kind:          model.KindFor(days),
		TriggerTime:   at,
		TriggerDays:   days,
		SnoozeMinutes: snoozeMinutes,
		Label:         label,
		Sound:         sound,
		LastTriggered: model.NeverTriggered,
	})
	return id, nil
}

// AddAlarmInfo registers a caller-built record. Valid ids are kept so
// persisted alarms reload with stable identifiers; ids below MinID are
// replaced with a fresh one. An empty Kind is derived from the day set.
func (s *Scheduler) AddAlarmInfo(in model.Alarm) (model.ID, error) {
	if in.Kind == "" {
		in.Kind = model.KindFor(in.TriggerDays)
	}
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if in.ID < model.MinID {
		id, err := s.allocateID()
		if err != nil {
			return 0, err
		}
		in.ID = id
	} else if s.indexOf(in.ID) >= 0 {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateID, in.ID)
	} else if in.ID >= s.nextID {
		s.nextID = in.ID + 1
		if s.nextID == 0 {
			// wrapped past MaxID; the next allocation fails
			s.nextID = model.MaxID
		}
	}
	s.alarms = append(s.alarms, in)
	return in.ID, nil
}

func (s *Scheduler) allocateID() (model.ID, error) {
	if s.nextID == model.MaxID {
		return 0, ErrIDsExhausted
	}
	id := s.nextID
	s.nextID++
	return id, nil
}

func (s *Scheduler) RemoveAlarm(index int) error {
	if index < 0 || index >= len(s.alarms) {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(s.alarms))
	}
	s.alarms = slices.Delete(s.alarms, index, index+1)
	return nil
}

// DeleteAlarm removes the first alarm with the id. Unknown ids are ignored.
func (s *Scheduler) DeleteAlarm(id model.ID) {
	if i := s.indexOf(id); i >= 0 {
		s.alarms = slices.Delete(s.alarms, i, i+1)
	}
}

func (s *Scheduler) Count() int {
	return len(s.alarms)
}

func (s *Scheduler) Alarm(index int) (model.Alarm, bool) {
	if index < 0 || index >= len(s.alarms) {
		return model.Alarm{}, false
	}
	return s.alarms[index], true
}

func (s *Scheduler) AlarmByID(id model.ID) (model.Alarm, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.alarms[i], true
	}
	return model.Alarm{}, false
}

// Alarms returns a copy of the registry in insertion order.
func (s *Scheduler) Alarms() []model.Alarm {
	return slices.Clone(s.alarms)
}

func (s *Scheduler) indexOf(id model.ID) int {
	return slices.IndexFunc(s.alarms, func(a model.Alarm) bool { return a.ID == id })
}
