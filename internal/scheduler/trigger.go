package scheduler

import (
	"slices"
	"time"

	"github.com/sandeepkv93/clockd/internal/model"
)

const daysPerWeek = 7

// IsTriggered returns the alarm due at now, if any, and marks it so it
// does not fire again on the same day. Fired one-time and snoozed alarms
// are purged before the scan.
func (s *Scheduler) IsTriggered(now time.Time) (model.Alarm, bool) {
	today := model.DayOf(now.Weekday())
	yearDay := now.YearDay()

	s.purgeFired()

	for i := range s.alarms {
		a := &s.alarms[i]
		if a.Kind == model.KindInactive || !a.TriggerDays.Effective().Has(today) {
			continue
		}
		if !matchesClock(a.TriggerTime, now) {
			continue
		}
		if a.LastTriggered == yearDay {
			continue
		}
		a.LastTriggered = yearDay
		return *a, true
	}
	return model.Alarm{}, false
}

// Tick is the poll-loop entry point.
func (s *Scheduler) Tick(now time.Time) (model.Alarm, bool) {
	return s.IsTriggered(now)
}

func (s *Scheduler) purgeFired() {
	s.alarms = slices.DeleteFunc(s.alarms, func(a model.Alarm) bool {
		return a.Kind.IsTransient() && a.HasFired()
	})
}

// matchesClock accepts the trigger hour or the hour before it, so an alarm
// still fires when the poll loop runs late.
func matchesClock(at model.TimeOfDay, now time.Time) bool {
	if int(at.Minute) != now.Minute() {
		return false
	}
	h := now.Hour()
	return int(at.Hour) == h || (h > 0 && int(at.Hour) == h-1)
}

// stillAhead reports whether at has not yet passed today.
func stillAhead(at model.TimeOfDay, now time.Time) bool {
	h := int(at.Hour)
	if h != now.Hour() {
		return h > now.Hour()
	}
	return int(at.Minute) > now.Minute()
}

// DaysUntil counts whole days from now to the next firing of a. Today only
// counts while its time is still ahead; an alarm that already went off
// today and fires on no other weekday is seven days out.
func DaysUntil(a model.Alarm, now time.Time) (int, bool) {
	days := a.TriggerDays.Effective()
	if days.IsEmpty() {
		return 0, false
	}
	for n := 0; n <= daysPerWeek; n++ {
		wd := (now.Weekday() + time.Weekday(n)) % daysPerWeek
		if !days.Has(model.DayOf(wd)) {
			continue
		}
		if n == 0 && !stillAhead(a.TriggerTime, now) {
			continue
		}
		return n, true
	}
	return 0, false
}

// NextDay returns the weekday a fires on next.
func NextDay(a model.Alarm, now time.Time) (time.Weekday, bool) {
	n, ok := DaysUntil(a, now)
	if !ok {
		return 0, false
	}
	return (now.Weekday() + time.Weekday(n)) % daysPerWeek, true
}

// NextAlarm returns the enabled alarm that fires soonest after now. Ties
// keep registry order.
func (s *Scheduler) NextAlarm(now time.Time) (model.Alarm, bool) {
	var best model.Alarm
	found := false
	for _, a := range s.alarms {
		if !a.Enabled() {
			continue
		}
		if _, ok := DaysUntil(a, now); !ok {
			continue
		}
		if !found || isSooner(best, a, now) {
			best = a
			found = true
		}
	}
	return best, found
}

// isSooner reports whether challenger fires before best. Alarms whose time
// already passed today are counted as days away by DaysUntil, so equal day
// counts compare by time of day alone.
func isSooner(best, challenger model.Alarm, now time.Time) bool {
	bestDays, _ := DaysUntil(best, now)
	challengerDays, _ := DaysUntil(challenger, now)
	if challengerDays != bestDays {
		return challengerDays < bestDays
	}

	bt, ct := best.TriggerTime, challenger.TriggerTime
	if ct.Hour != bt.Hour {
		return ct.Hour < bt.Hour
	}
	return ct.Minute < bt.Minute
}
