package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("model: invalid time of day")

const (
	HoursPerDay    = 24
	MinutesPerHour = 60
)

type TimeOfDay struct {
	Hour   uint8
	Minute uint8
	Second uint8
}

// Validate checks hour and minute. Seconds are accepted as given.
func (t TimeOfDay) Validate() error {
	if t.Hour >= HoursPerDay || t.Minute >= MinutesPerHour {
		return fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, t.Hour, t.Minute)
	}
	return nil
}

// AddMinutes wraps minutes at 60 and hours at 24.
func (t TimeOfDay) AddMinutes(minutes uint) TimeOfDay {
	total := uint(t.Hour)*MinutesPerHour + uint(t.Minute) + minutes
	total %= HoursPerDay * MinutesPerHour
	return TimeOfDay{
		Hour:   uint8(total / MinutesPerHour),
		Minute: uint8(total % MinutesPerHour),
		Second: t.Second,
	}
}

func (t TimeOfDay) String() string {
	if t.Second == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	values := make([]uint8, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
		values[i] = uint8(v)
	}
	out := TimeOfDay{Hour: values[0], Minute: values[1], Second: values[2]}
	if err := out.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return out, nil
}
