package storage

import "time"

// Alarm is the persisted form of an alarm record.
type Alarm struct {
	ID            int64
	Label         string
	Hour          int
	Minute        int
	Second        int
	Days          int
	Kind          string
	Sound         string
	SnoozeMinutes int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AlarmListFilter struct {
	Kind   string
	Limit  int
	Offset int
}
