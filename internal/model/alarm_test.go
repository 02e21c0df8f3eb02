package model

import (
	"errors"
	"testing"
)

func TestAlarmValidateSuccess(t *testing.T) {
	a := Alarm{
		ID:          MinID,
		Kind:        KindActive,
		TriggerTime: TimeOfDay{Hour: 7, Minute: 30},
		TriggerDays: Weekdays,
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid alarm, got error: %v", err)
	}
}

func TestAlarmValidateInvalidTime(t *testing.T) {
	a := Alarm{Kind: KindActive, TriggerTime: TimeOfDay{Hour: 24}}
	err := a.Validate()
	if !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestAlarmValidateInvalidKind(t *testing.T) {
	a := Alarm{Kind: Kind("Paused"), TriggerTime: TimeOfDay{Hour: 6}}
	err := a.Validate()
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestKindFor(t *testing.T) {
	if got := KindFor(NoDay); got != KindInactive {
		t.Fatalf("expected Inactive for empty set, got %q", got)
	}
	if got := KindFor(OneTime); got != KindOneTime {
		t.Fatalf("expected OneTime, got %q", got)
	}
	if got := KindFor(Monday | Friday); got != KindActive {
		t.Fatalf("expected Active, got %q", got)
	}
	if got := KindFor(OneTime | Monday); got != KindActive {
		t.Fatalf("expected Active for OneTime mixed with days, got %q", got)
	}
}

func TestAlarmEnabled(t *testing.T) {
	if (Alarm{Kind: KindActive, TriggerDays: Monday}).Enabled() != true {
		t.Fatal("expected active alarm enabled")
	}
	if (Alarm{Kind: KindInactive}).Enabled() {
		t.Fatal("expected inactive alarm disabled")
	}
	if (Alarm{Kind: KindSnoozed, TriggerDays: Everyday}).Enabled() {
		t.Fatal("expected snoozed alarm excluded")
	}
	if !(Alarm{Kind: KindOneTime, TriggerDays: OneTime}).Enabled() {
		t.Fatal("expected one-time alarm enabled")
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Alarm{ID: 4}).DisplayName(); got != "alarm 4" {
		t.Fatalf("unexpected fallback name: %q", got)
	}
	if got := (Alarm{ID: 4, Label: "Wake"}).DisplayName(); got != "Wake" {
		t.Fatalf("unexpected label: %q", got)
	}
}
