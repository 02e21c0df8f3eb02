package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDaySet = errors.New("model: invalid day set")

// DaySet is a bit set over the weekdays plus the standalone OneTime flag.
type DaySet uint8

const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	OneTime

	NoDay    DaySet = 0
	Weekdays        = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekends        = Saturday | Sunday
	Everyday        = Weekdays | Weekends
)

var weekdayFlags = [7]DaySet{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// DayOf maps a weekday to its single-bit flag.
func DayOf(d time.Weekday) DaySet {
	if d < time.Sunday || d > time.Saturday {
		return NoDay
	}
	return weekdayFlags[d]
}

func (s DaySet) Has(flags DaySet) bool {
	return s&flags != 0
}

// Days strips the OneTime flag.
func (s DaySet) Days() DaySet {
	return s & Everyday
}

func (s DaySet) IsEmpty() bool {
	return s == NoDay
}

// Effective is the set of weekdays the alarm can fire on. A bare OneTime
// set fires on whichever day its time comes up next.
func (s DaySet) Effective() DaySet {
	if days := s.Days(); days != NoDay {
		return days
	}
	if s.Has(OneTime) {
		return Everyday
	}
	return NoDay
}

var dayNames = []struct {
	flag DaySet
	name string
}{
	{Monday, "mon"},
	{Tuesday, "tue"},
	{Wednesday, "wed"},
	{Thursday, "thu"},
	{Friday, "fri"},
	{Saturday, "sat"},
	{Sunday, "sun"},
}

func (s DaySet) String() string {
	switch s {
	case NoDay:
		return "none"
	case OneTime:
		return "once"
	case Everyday:
		return "everyday"
	case Weekdays:
		return "weekdays"
	case Weekends:
		return "weekends"
	}
	parts := make([]string, 0, 8)
	for _, d := range dayNames {
		if s.Has(d.flag) {
			parts = append(parts, d.name)
		}
	}
	if s.Has(OneTime) {
		parts = append(parts, "once")
	}
	return strings.Join(parts, ",")
}

// ParseDaySet accepts a comma separated list of day names and the keywords
// weekdays, weekends, everyday, once and none.
func ParseDaySet(raw string) (DaySet, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return NoDay, fmt.Errorf("%w: empty", ErrInvalidDaySet)
	}
	var out DaySet
	for _, token := range strings.Split(normalized, ",") {
		switch strings.TrimSpace(token) {
		case "none", "off":
		case "once", "onetime":
			out |= OneTime
		case "everyday", "daily", "all":
			out |= Everyday
		case "weekdays", "weekday":
			out |= Weekdays
		case "weekends", "weekend":
			out |= Weekends
		case "mon", "monday":
			out |= Monday
		case "tue", "tuesday":
			out |= Tuesday
		case "wed", "wednesday":
			out |= Wednesday
		case "thu", "thursday":
			out |= Thursday
		case "fri", "friday":
			out |= Friday
		case "sat", "saturday":
			out |= Saturday
		case "sun", "sunday":
			out |= Sunday
		default:
			return NoDay, fmt.Errorf("%w: %q", ErrInvalidDaySet, token)
		}
	}
	return out, nil
}
