package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"club-manager/app/database"
	"club-manager/app/models"

	"github.com/google/uuid"
)

var (
	// ErrInvalidWeekday is returned when a weekday is outside 0..6.
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	// ErrNotRecurring is returned when expansion is requested for an event
	// without a recurrence definition.
	ErrNotRecurring = errors.New("event is not recurring")
)

// ExpandDates enumerates the dates d with start <= d <= end whose weekday
// is in the given set, in calendar order. Weekdays use 0=Monday..6=Sunday.
// An inverted window or an empty weekday set yields an empty result, not
// an error; a weekday outside 0..6 rejects the whole input.
func ExpandDates(start, end models.CivilDate, weekdays []int) ([]models.CivilDate, error) {
	wanted := [7]bool{}
	for _, wd := range weekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, wd)
		}
		wanted[wd] = true
	}

	var dates []models.CivilDate
	if len(weekdays) == 0 {
		return dates, nil
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if wanted[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// missingDates returns the members of wanted not present in existing,
// preserving order.
func missingDates(wanted []models.CivilDate, existing map[string]bool) []models.CivilDate {
	var missing []models.CivilDate
	for _, d := range wanted {
		if !existing[d.Format("2006-01-02")] {
			missing = append(missing, d)
		}
	}
	return missing
}

// ExpansionResult reports the outcome of one expansion run.
type ExpansionResult struct {
	Children []*models.Event `json:"children"`
	Created  int             `json:"created"`
}

// ExpandRecurringEvent materializes one child event per matching date of
// the parent's recurrence window. Re-running is idempotent: dates that
// already have a child are skipped. The whole run is one transaction
// holding a per-parent advisory lock, so two concurrent expansions cannot
// both insert the same occurrence; the unique (parent_event_id, occurs_on)
// index backs the same guarantee at the storage level.
func ExpandRecurringEvent(db *sql.DB, parentID string) (*ExpansionResult, error) {
	parent, err := database.GetEventByID(db, parentID)
	if err != nil {
		return nil, err
	}
	if parent.IsChild() {
		return nil, ErrNotRecurring
	}
	if !parent.IsRecurring || parent.RecurrenceStart == nil || parent.RecurrenceEnd == nil {
		return nil, ErrNotRecurring
	}

	dates, err := ExpandDates(*parent.RecurrenceStart, *parent.RecurrenceEnd, parent.RecurrenceWeekdays)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Serialize concurrent expansions of the same parent. The lock is
	// released automatically at commit/rollback.
	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, parent.ID); err != nil {
		return nil, err
	}

	existing := make(map[string]bool)
	rows, err := tx.Query(`SELECT occurs_on FROM events WHERE parent_event_id = $1`, parent.ID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var occursOn models.CivilDate
		if err := rows.Scan(&occursOn); err != nil {
			rows.Close()
			return nil, err
		}
		existing[occursOn.Format("2006-01-02")] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	created := 0
	for _, d := range missingDates(dates, existing) {
		if err := insertChildEvent(tx, parent, d); err != nil {
			return nil, err
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if created > 0 {
		log.Printf("Expanded recurring event %s: created %d of %d occurrences", parent.ID, created, len(dates))
	}

	children, err := database.GetChildEvents(db, parent.ID)
	if err != nil {
		return nil, err
	}
	return &ExpansionResult{Children: children, Created: created}, nil
}

// insertChildEvent copies the parent's non-temporal fields into a child
// scheduled on the given date, keeping the parent's time of day.
func insertChildEvent(tx *sql.Tx, parent *models.Event, d models.CivilDate) error {
	startsAt := time.Date(
		d.Year(), d.Month(), d.Day(),
		parent.StartsAt.Hour(), parent.StartsAt.Minute(), parent.StartsAt.Second(), 0,
		parent.StartsAt.Location(),
	)
	var endsAt *time.Time
	if parent.EndsAt != nil {
		e := startsAt.Add(parent.EndsAt.Sub(parent.StartsAt))
		endsAt = &e
	}

	_, err := tx.Exec(`
		INSERT INTO events (id, title, description, type, status, location, starts_at, ends_at,
			is_recurring, parent_event_id, occurs_on, race_fee, relay_fee, flat_fee,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`,
		uuid.New().String(), parent.Title, parent.Description, parent.Type, models.Scheduled,
		parent.Location, startsAt, endsAt, parent.ID, d,
		parent.RaceFee, parent.RelayFee, parent.FlatFee, nullableCreatedBy(parent.CreatedBy),
	)
	return err
}

func nullableCreatedBy(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}
