package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"club-manager/app/database"
	"club-manager/app/models"

	"github.com/shopspring/decimal"
)

// ErrMissingFee is returned when the group's pricing mode has no unit
// price configured. The whole computation fails; billing never proceeds
// with an implied zero price.
var ErrMissingFee = errors.New("no unit price configured for pricing mode")

// ErrInvalidPricingMode is returned for an unknown pricing mode.
var ErrInvalidPricingMode = errors.New("invalid pricing mode")

// ComputeMovements derives one billing line per athlete entry of a group.
// Amounts are rounded half-up to 2 decimal places. Entries with zero
// races or relay legs still produce an explicit 0.00 line, so the output
// always has exactly one line per entry.
func ComputeMovements(group *models.ConvocationGroup, entries []*models.ConvocationAthlete) ([]*models.ConvocationMovement, error) {
	var fee *decimal.Decimal
	switch group.PricingMode {
	case models.PerRace:
		fee = group.RaceFee
	case models.PerRelay:
		fee = group.RelayFee
	case models.Flat:
		fee = group.FlatFee
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPricingMode, group.PricingMode)
	}
	if fee == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingFee, group.PricingMode)
	}

	movements := make([]*models.ConvocationMovement, 0, len(entries))
	for _, entry := range entries {
		var amount decimal.Decimal
		var description string
		switch group.PricingMode {
		case models.PerRace:
			amount = fee.Mul(decimal.NewFromInt(int64(entry.Races)))
			description = fmt.Sprintf("Convocation fee: %d races x %s", entry.Races, fee.StringFixed(2))
		case models.PerRelay:
			amount = fee.Mul(decimal.NewFromInt(int64(entry.RelayLegs)))
			description = fmt.Sprintf("Convocation fee: %d relay legs x %s", entry.RelayLegs, fee.StringFixed(2))
		case models.Flat:
			amount = *fee
			description = fmt.Sprintf("Convocation fee: flat %s", fee.StringFixed(2))
		}

		movements = append(movements, &models.ConvocationMovement{
			GroupID:     group.ID,
			EventID:     group.EventID,
			AthleteID:   entry.AthleteID,
			Amount:      amount.Round(2),
			Description: description,
		})
	}
	return movements, nil
}

// GenerateMovements computes and persists the billing lines of a group.
// The previous lines of the group are replaced in the same transaction,
// so regeneration is idempotent: either the complete new set commits or
// the old set stays untouched.
func GenerateMovements(db *sql.DB, groupID string) ([]*models.ConvocationMovement, error) {
	group, err := database.GetConvocationGroupByID(db, groupID)
	if err != nil {
		return nil, err
	}

	movements, err := ComputeMovements(group, group.Athletes)
	if err != nil {
		return nil, err
	}

	if err := database.ReplaceMovements(db, group.ID, movements); err != nil {
		return nil, err
	}

	log.Printf("Generated %d convocation movements for group %s", len(movements), group.ID)
	return movements, nil
}
