package views

import (
	"strings"
	"testing"
)

func TestRenderAlarmListEmpty(t *testing.T) {
	out := RenderAlarmList(AlarmListData{})
	if !strings.Contains(out, "no alarms") {
		t.Fatalf("expected empty hint, got %q", out)
	}
}

func TestRenderAlarmListMarksNext(t *testing.T) {
	out := RenderAlarmList(AlarmListData{Rows: []AlarmRowData{
		{Position: 1, ID: "1", Time: "07:00", Days: "weekdays", Label: "Wake", Kind: "Active", IsNext: true},
		{Position: 2, ID: "2", Time: "09:30", Days: "sat,sun", Label: "Brunch", Kind: "Active"},
	}})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", out)
	}
	if !strings.HasPrefix(lines[1], ">") || strings.HasPrefix(lines[2], ">") {
		t.Fatalf("expected only first row marked: %q", out)
	}
}

func TestRenderNextAlarm(t *testing.T) {
	out := RenderNextAlarm(NextAlarmData{Found: true, Label: "Wake", Time: "07:00", Weekday: "Tuesday", InDays: 1, Snooze: "07:10"})
	if !strings.Contains(out, "Wake at 07:00") || !strings.Contains(out, "tomorrow") || !strings.Contains(out, "Snoozed until 07:10") {
		t.Fatalf("unexpected next alarm pane: %q", out)
	}
	out = RenderNextAlarm(NextAlarmData{})
	if !strings.Contains(out, "none scheduled") {
		t.Fatalf("unexpected empty pane: %q", out)
	}
}

func TestRenderAppIncludesAlert(t *testing.T) {
	out := RenderApp(AppData{Header: "clockd", Clock: "07:00:00", LeftPane: "left", RightPane: "right", Alert: "WAKE", StatusLine: "ok"})
	for _, want := range []string{"clockd", "07:00:00", "left", "right", "WAKE", "ok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("  ") != "" {
		t.Fatal("expected empty output for blank markdown")
	}
}
