package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
	"github.com/sandeepkv93/clockd/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	alarms := m.Engine.Alarms()
	next, hasNext := m.Engine.NextAlarm(m.Clock)

	status := ""
	if m.Status.Text != "" {
		status = "status: " + m.Status.Text
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		}
	}

	palette := ""
	if m.Palette.Active {
		palette = m.commandInput.View()
	}

	return views.RenderApp(views.AppData{
		Header:     "clockd",
		Clock:      m.Clock.Format("Mon 02 Jan 2006  15:04:05"),
		LeftPane:   views.RenderAlarmList(alarmListData(alarms, next, hasNext)),
		RightPane:  views.RenderNextAlarm(m.nextAlarmData(alarms, next, hasNext)),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Alert:      m.renderAlert(),
		Palette:    palette,
		Help:       m.renderHelpIfVisible(),
		Footer:     m.renderFooter(),
	})
}

func alarmListData(alarms []model.Alarm, next model.Alarm, hasNext bool) views.AlarmListData {
	rows := make([]views.AlarmRowData, 0, len(alarms))
	for i, a := range alarms {
		id := fmt.Sprintf("%d", a.ID)
		if a.ID == model.SnoozeID {
			id = "zz"
		}
		rows = append(rows, views.AlarmRowData{
			Position: i + 1,
			ID:       id,
			Time:     a.TriggerTime.String(),
			Days:     a.TriggerDays.String(),
			Label:    a.DisplayName(),
			Kind:     string(a.Kind),
			IsNext:   hasNext && a.ID == next.ID,
		})
	}
	return views.AlarmListData{Rows: rows}
}

func (m Model) nextAlarmData(alarms []model.Alarm, next model.Alarm, hasNext bool) views.NextAlarmData {
	out := views.NextAlarmData{Found: hasNext, Details: m.Details}
	if hasNext {
		days, _ := scheduler.DaysUntil(next, m.Clock)
		day, _ := scheduler.NextDay(next, m.Clock)
		out.Label = next.DisplayName()
		out.Time = next.TriggerTime.String()
		out.Weekday = day.String()
		out.InDays = days
	}
	for _, a := range alarms {
		if a.ID == model.SnoozeID {
			out.Snooze = a.TriggerTime.String()
		}
	}
	return out
}

func (m Model) renderAlert() string {
	if m.Ringing == nil {
		return ""
	}
	return fmt.Sprintf("ALARM  %s  %s    [%s] snooze  [%s] dismiss",
		m.Ringing.DisplayName(), m.Ringing.TriggerTime, m.Keys.Snooze, m.Keys.Dismiss)
}

func (m Model) renderAlarmDetails() string {
	alarms := m.Engine.Alarms()
	if len(alarms) == 0 {
		return ""
	}
	lines := make([]string, 0, len(alarms))
	for _, a := range alarms {
		line := fmt.Sprintf("#%d %s snooze=%dm", a.ID, a.DisplayName(), a.SnoozeMinutes)
		if a.Sound != "" {
			line += " sound=" + a.Sound
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
