package models

// EventType defines the kinds of club events.
type EventType string

const (
	Training      EventType = "training"
	Race          EventType = "race"
	InternalEvent EventType = "internal"
	Meeting       EventType = "meeting"
)

// ValidEventType reports whether t is a known event type.
func ValidEventType(t EventType) bool {
	switch t {
	case Training, Race, InternalEvent, Meeting:
		return true
	}
	return false
}

// EventStatus defines the lifecycle states of an event.
type EventStatus string

const (
	Draft      EventStatus = "draft"
	Scheduled  EventStatus = "scheduled"
	InProgress EventStatus = "in_progress"
	Completed  EventStatus = "completed"
	Cancelled  EventStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s EventStatus) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step. The forward chain is monotonic
// (draft -> scheduled -> in_progress -> completed); cancellation is
// allowed from any non-terminal state.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}
	switch s {
	case Draft:
		return next == Scheduled
	case Scheduled:
		return next == InProgress
	case InProgress:
		return next == Completed
	}
	return false
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present   AttendanceStatus = "present"
	Absent    AttendanceStatus = "absent"
	Justified AttendanceStatus = "justified"
)

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case Present, Absent, Justified:
		return true
	}
	return false
}

// PricingMode defines how a convocation group bills its athletes.
type PricingMode string

const (
	PerRace  PricingMode = "per_race"
	PerRelay PricingMode = "per_relay"
	Flat     PricingMode = "flat"
)

// ValidPricingMode reports whether m is a known pricing mode.
func ValidPricingMode(m PricingMode) bool {
	switch m {
	case PerRace, PerRelay, Flat:
		return true
	}
	return false
}
