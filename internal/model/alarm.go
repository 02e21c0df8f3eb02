package model

import (
	"errors"
	"fmt"
)

var ErrInvalidKind = errors.New("model: invalid alarm kind")

type ID uint16

const (
	// SnoozeID is reserved for the single pending snooze record.
	SnoozeID ID = 0
	MinID    ID = 1
	MaxID    ID = ^ID(0)
)

// NeverTriggered marks an alarm that has not fired yet.
const NeverTriggered = 0

type Kind string

const (
	KindActive   Kind = "Active"
	KindInactive Kind = "Inactive"
	KindOneTime  Kind = "OneTime"
	KindSnoozed  Kind = "Snoozed"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindActive, KindInactive, KindOneTime, KindSnoozed:
		return true
	default:
		return false
	}
}

// IsTransient reports kinds that are removed once they have fired.
func (k Kind) IsTransient() bool {
	return k == KindOneTime || k == KindSnoozed
}

// KindFor derives the kind of a newly created alarm from its day set.
func KindFor(days DaySet) Kind {
	switch days {
	case NoDay:
		return KindInactive
	case OneTime:
		return KindOneTime
	default:
		return KindActive
	}
}

type Alarm struct {
	ID            ID
	Kind          Kind
	TriggerTime   TimeOfDay
	TriggerDays   DaySet
	SnoozeMinutes uint
	Label         string
	Sound         string
	// LastTriggered is the day of year (1-366) the alarm last fired on.
	LastTriggered int
}

func (a Alarm) Validate() error {
	if err := a.TriggerTime.Validate(); err != nil {
		return err
	}
	if !a.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, a.Kind)
	}
	return nil
}

// Enabled reports whether the alarm takes part in next-alarm selection.
func (a Alarm) Enabled() bool {
	return (a.Kind == KindActive || a.Kind == KindOneTime) && !a.TriggerDays.IsEmpty()
}

func (a Alarm) HasFired() bool {
	return a.LastTriggered != NeverTriggered
}

func (a Alarm) DisplayName() string {
	if a.Label != "" {
		return a.Label
	}
	return fmt.Sprintf("alarm %d", a.ID)
}
