package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvocationGroup is a roster of athletes called up to an event together
// with the pricing rule used to bill them.
type ConvocationGroup struct {
	ID          string                `json:"id"`
	EventID     string                `json:"event_id"`
	PricingMode PricingMode           `json:"pricing_mode"`
	RaceFee     *decimal.Decimal      `json:"race_fee,omitempty"`
	RelayFee    *decimal.Decimal      `json:"relay_fee,omitempty"`
	FlatFee     *decimal.Decimal      `json:"flat_fee,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	CreatedBy   string                `json:"created_by"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Athletes    []*ConvocationAthlete `json:"athletes,omitempty"`
}

// DefaultPricingFrom fills unset group fees from the event's default
// pricing fields. The group's own values stay authoritative for billing.
func (g *ConvocationGroup) DefaultPricingFrom(e *Event) {
	if g.RaceFee == nil {
		g.RaceFee = e.RaceFee
	}
	if g.RelayFee == nil {
		g.RelayFee = e.RelayFee
	}
	if g.FlatFee == nil {
		g.FlatFee = e.FlatFee
	}
}

// ConvocationAthlete is one called-up athlete within a group.
// At most one entry exists per (group, athlete) pair.
type ConvocationAthlete struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	AthleteID string    `json:"athlete_id"`
	Races     int       `json:"races"`
	RelayLegs int       `json:"relay_legs"`
	Confirmed bool      `json:"confirmed"`
	Present   bool      `json:"present"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Athlete   *User     `json:"athlete,omitempty"`
}

// ConvocationMovement is the billing line derived for one athlete of a
// group. Regeneration replaces the group's whole movement set, so the
// lines always mirror the latest computation.
type ConvocationMovement struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"group_id"`
	EventID     string          `json:"event_id"`
	AthleteID   string          `json:"athlete_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Athlete     *User           `json:"athlete,omitempty"`
}
