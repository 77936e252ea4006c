package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents a club calendar event. A recurring event acts as a
// template: its recurrence window and weekday set expand into one child
// event per matching date, each child pointing back via ParentEventID.
type Event struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Type               EventType        `json:"type"`
	Status             EventStatus      `json:"status"`
	Location           string           `json:"location"`
	StartsAt           time.Time        `json:"starts_at"`
	EndsAt             *time.Time       `json:"ends_at,omitempty"`
	IsRecurring        bool             `json:"is_recurring"`
	RecurrenceStart    *CivilDate       `json:"recurrence_start,omitempty"`
	RecurrenceEnd      *CivilDate       `json:"recurrence_end,omitempty"`
	RecurrenceWeekdays []int            `json:"recurrence_weekdays,omitempty"` // 0=Monday .. 6=Sunday
	ParentEventID      *string          `json:"parent_event_id,omitempty"`
	OccursOn           *CivilDate       `json:"occurs_on,omitempty"` // set on generated children only
	RaceFee            *decimal.Decimal `json:"race_fee,omitempty"`  // default pricing copied into new convocation groups
	RelayFee           *decimal.Decimal `json:"relay_fee,omitempty"`
	FlatFee            *decimal.Decimal `json:"flat_fee,omitempty"`
	CreatedBy          string           `json:"created_by"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// IsChild reports whether the event was generated from a recurring parent.
func (e *Event) IsChild() bool {
	return e.ParentEventID != nil
}
