package services

import (
	"errors"
	"testing"

	"club-manager/app/models"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func entry(athleteID string, races, relayLegs int) *models.ConvocationAthlete {
	return &models.ConvocationAthlete{AthleteID: athleteID, Races: races, RelayLegs: relayLegs}
}

func TestComputeMovementsPerRace(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		EventID:     "event-1",
		PricingMode: models.PerRace,
		RaceFee:     dec("2.50"),
	}
	entries := []*models.ConvocationAthlete{
		entry("athlete-a", 3, 0),
		entry("athlete-b", 0, 0),
		entry("athlete-c", 5, 0),
	}

	movements, err := ComputeMovements(group, entries)
	if err != nil {
		t.Fatalf("ComputeMovements: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("expected one line per entry, got %d", len(movements))
	}

	want := []string{"7.50", "0.00", "12.50"}
	for i, m := range movements {
		if got := m.Amount.StringFixed(2); got != want[i] {
			t.Fatalf("line %d: expected %s, got %s", i, want[i], got)
		}
	}

	// The zero-count athlete still gets an explicit line
	if movements[1].AthleteID != "athlete-b" || !movements[1].Amount.IsZero() {
		t.Fatalf("expected explicit 0.00 line for athlete-b, got %+v", movements[1])
	}
}

func TestComputeMovementsPerRelay(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		EventID:     "event-1",
		PricingMode: models.PerRelay,
		RelayFee:    dec("1.75"),
		RaceFee:     dec("99.00"), // must be ignored in relay mode
	}
	entries := []*models.ConvocationAthlete{
		entry("athlete-a", 4, 2),
		entry("athlete-b", 0, 1),
	}

	movements, err := ComputeMovements(group, entries)
	if err != nil {
		t.Fatalf("ComputeMovements: %v", err)
	}
	if got := movements[0].Amount.StringFixed(2); got != "3.50" {
		t.Fatalf("expected 3.50, got %s", got)
	}
	if got := movements[1].Amount.StringFixed(2); got != "1.75" {
		t.Fatalf("expected 1.75, got %s", got)
	}
}

func TestComputeMovementsFlat(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		EventID:     "event-1",
		PricingMode: models.Flat,
		FlatFee:     dec("15.00"),
	}
	entries := []*models.ConvocationAthlete{
		entry("athlete-a", 3, 1),
		entry("athlete-b", 0, 0),
		entry("athlete-c", 10, 4),
	}

	movements, err := ComputeMovements(group, entries)
	if err != nil {
		t.Fatalf("ComputeMovements: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(movements))
	}
	for i, m := range movements {
		if got := m.Amount.StringFixed(2); got != "15.00" {
			t.Fatalf("line %d: flat mode expected 15.00 regardless of counts, got %s", i, got)
		}
	}
}

func TestComputeMovementsMissingFee(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		PricingMode: models.PerRace,
		// RaceFee deliberately unset; RelayFee present but irrelevant
		RelayFee: dec("1.00"),
	}
	entries := []*models.ConvocationAthlete{entry("athlete-a", 3, 0)}

	movements, err := ComputeMovements(group, entries)
	if !errors.Is(err, ErrMissingFee) {
		t.Fatalf("expected ErrMissingFee, got %v", err)
	}
	if movements != nil {
		t.Fatalf("expected no partial output, got %d lines", len(movements))
	}
}

func TestComputeMovementsInvalidMode(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		PricingMode: "per_dive",
	}

	_, err := ComputeMovements(group, []*models.ConvocationAthlete{entry("athlete-a", 1, 0)})
	if !errors.Is(err, ErrInvalidPricingMode) {
		t.Fatalf("expected ErrInvalidPricingMode, got %v", err)
	}
}

func TestComputeMovementsRoundsHalfUp(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		PricingMode: models.PerRace,
		RaceFee:     dec("0.125"),
	}

	movements, err := ComputeMovements(group, []*models.ConvocationAthlete{entry("athlete-a", 1, 0)})
	if err != nil {
		t.Fatalf("ComputeMovements: %v", err)
	}
	if got := movements[0].Amount.StringFixed(2); got != "0.13" {
		t.Fatalf("expected 0.125 to round half-up to 0.13, got %s", got)
	}
}

func TestComputeMovementsSumHasNoDrift(t *testing.T) {
	group := &models.ConvocationGroup{
		ID:          "group-1",
		PricingMode: models.PerRace,
		RaceFee:     dec("1.25"),
	}

	var entries []*models.ConvocationAthlete
	totalRaces := 0
	for i, races := range []int{1, 2, 3, 4, 5, 6} {
		entries = append(entries, entry(string(rune('a'+i)), races, 0))
		totalRaces += races
	}

	movements, err := ComputeMovements(group, entries)
	if err != nil {
		t.Fatalf("ComputeMovements: %v", err)
	}

	sum := decimal.Zero
	for _, m := range movements {
		sum = sum.Add(m.Amount)
	}
	expected := group.RaceFee.Mul(decimal.NewFromInt(int64(totalRaces)))
	if !sum.Equal(expected) {
		t.Fatalf("expected sum %s, got %s", expected.StringFixed(2), sum.StringFixed(2))
	}
}
