package views

import (
	"fmt"
	"strings"
)

type AlarmRowData struct {
	Position int
	ID       string
	Time     string
	Days     string
	Label    string
	Kind     string
	IsNext   bool
}

type AlarmListData struct {
	Rows []AlarmRowData
}

type NextAlarmData struct {
	Found   bool
	Label   string
	Time    string
	Weekday string
	InDays  int
	Snooze  string
	Details string
}

func RenderAlarmList(data AlarmListData) string {
	lines := []string{"Alarms"}
	if len(data.Rows) == 0 {
		lines = append(lines, "(no alarms, press / and type: add 07:00 weekdays Wake up)")
		return strings.Join(lines, "\n")
	}
	for _, r := range data.Rows {
		marker := " "
		if r.IsNext {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %2d. #%-4s %s  %-14s %s [%s]", marker, r.Position, r.ID, r.Time, r.Days, r.Label, r.Kind))
	}
	return strings.Join(lines, "\n")
}

func RenderNextAlarm(data NextAlarmData) string {
	lines := []string{"Next alarm"}
	if !data.Found {
		lines = append(lines, "none scheduled")
	} else {
		when := data.Weekday
		switch data.InDays {
		case 0:
			when = "today"
		case 1:
			when = "tomorrow"
		}
		lines = append(lines, fmt.Sprintf("%s at %s", data.Label, data.Time), when)
	}
	if data.Snooze != "" {
		lines = append(lines, "", "Snoozed until "+data.Snooze)
	}
	if data.Details != "" {
		lines = append(lines, "", data.Details)
	}
	return strings.Join(lines, "\n")
}
