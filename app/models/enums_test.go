package models

import "testing"

func TestEventStatusForwardChain(t *testing.T) {
	steps := []struct {
		from, to EventStatus
	}{
		{Draft, Scheduled},
		{Scheduled, InProgress},
		{InProgress, Completed},
	}
	for _, s := range steps {
		if !s.from.CanTransitionTo(s.to) {
			t.Fatalf("expected %s -> %s to be allowed", s.from, s.to)
		}
	}
}

func TestEventStatusNoSkippingOrRewind(t *testing.T) {
	blocked := []struct {
		from, to EventStatus
	}{
		{Draft, InProgress},
		{Draft, Completed},
		{Scheduled, Completed},
		{Scheduled, Draft},
		{InProgress, Scheduled},
	}
	for _, s := range blocked {
		if s.from.CanTransitionTo(s.to) {
			t.Fatalf("expected %s -> %s to be rejected", s.from, s.to)
		}
	}
}

func TestEventStatusCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []EventStatus{Draft, Scheduled, InProgress} {
		if !from.CanTransitionTo(Cancelled) {
			t.Fatalf("expected %s -> cancelled to be allowed", from)
		}
	}
}

func TestEventStatusTerminalStatesAreFinal(t *testing.T) {
	for _, from := range []EventStatus{Completed, Cancelled} {
		if !from.IsTerminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range []EventStatus{Draft, Scheduled, InProgress, Completed, Cancelled} {
			if from.CanTransitionTo(to) {
				t.Fatalf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestValidEnumHelpers(t *testing.T) {
	if !ValidEventType(Race) || ValidEventType("regatta") {
		t.Fatal("ValidEventType mismatch")
	}
	if !ValidAttendanceStatus(Justified) || ValidAttendanceStatus("late") {
		t.Fatal("ValidAttendanceStatus mismatch")
	}
	if !ValidPricingMode(PerRelay) || ValidPricingMode("per_meet") {
		t.Fatal("ValidPricingMode mismatch")
	}
}
