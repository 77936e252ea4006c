package database

import (
	"database/sql"
	"fmt"
	"strings"

	"club-manager/app/models"

	"github.com/lib/pq"
)

const eventColumns = `id, title, description, type, status, location, starts_at, ends_at,
	is_recurring, recurrence_start, recurrence_end, recurrence_weekdays,
	parent_event_id, occurs_on, race_fee, relay_fee, flat_fee,
	created_by, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	var weekdays pq.Int64Array
	var createdBy sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Type, &e.Status, &e.Location,
		&e.StartsAt, &e.EndsAt, &e.IsRecurring, &e.RecurrenceStart, &e.RecurrenceEnd,
		&weekdays, &e.ParentEventID, &e.OccursOn, &e.RaceFee, &e.RelayFee, &e.FlatFee,
		&createdBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, wd := range weekdays {
		e.RecurrenceWeekdays = append(e.RecurrenceWeekdays, int(wd))
	}
	e.CreatedBy = createdBy.String
	return e, nil
}

// EventFilters represents filtering options for event listings
type EventFilters struct {
	Type       models.EventType
	Status     models.EventStatus
	From       *models.CivilDate
	To         *models.CivilDate
	ParentOnly bool // exclude generated children from calendar listings
}

// CreateEvent adds a new event to the database
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, type, status, location, starts_at, ends_at,
			is_recurring, recurrence_start, recurrence_end, recurrence_weekdays,
			race_fee, relay_fee, flat_fee, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	weekdays := make(pq.Int64Array, 0, len(event.RecurrenceWeekdays))
	for _, wd := range event.RecurrenceWeekdays {
		weekdays = append(weekdays, int64(wd))
	}
	err := db.QueryRow(
		query,
		event.Title, event.Description, event.Type, event.Status, event.Location,
		event.StartsAt, event.EndsAt, event.IsRecurring,
		event.RecurrenceStart, event.RecurrenceEnd, weekdays,
		event.RaceFee, event.RelayFee, event.FlatFee, nullableID(event.CreatedBy),
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	return mapError(err)
}

// GetEventByID retrieves a single event
func GetEventByID(db *sql.DB, id string) (*models.Event, error) {
	row := db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		return nil, mapError(err)
	}
	return event, nil
}

// GetEvents retrieves events ordered by start time
func GetEvents(db *sql.DB, filters EventFilters) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, filters.Type)
		argIndex++
	}
	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}
	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("starts_at >= $%d", argIndex))
		args = append(args, filters.From)
		argIndex++
	}
	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("starts_at < $%d", argIndex))
		args = append(args, filters.To.AddDays(1))
		argIndex++
	}
	if filters.ParentOnly {
		conditions = append(conditions, "parent_event_id IS NULL")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY starts_at ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetChildEvents retrieves the generated occurrences of a recurring parent
// ordered by date
func GetChildEvents(db *sql.DB, parentID string) ([]*models.Event, error) {
	rows, err := db.Query(
		`SELECT `+eventColumns+` FROM events WHERE parent_event_id = $1 ORDER BY occurs_on ASC`,
		parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEvent updates an existing event
func UpdateEvent(db *sql.DB, event *models.Event) error {
	weekdays := make(pq.Int64Array, 0, len(event.RecurrenceWeekdays))
	for _, wd := range event.RecurrenceWeekdays {
		weekdays = append(weekdays, int64(wd))
	}
	query := `
		UPDATE events
		SET title = $1, description = $2, type = $3, location = $4,
			starts_at = $5, ends_at = $6, is_recurring = $7,
			recurrence_start = $8, recurrence_end = $9, recurrence_weekdays = $10,
			race_fee = $11, relay_fee = $12, flat_fee = $13, updated_at = NOW()
		WHERE id = $14
	`
	res, err := db.Exec(query,
		event.Title, event.Description, event.Type, event.Location,
		event.StartsAt, event.EndsAt, event.IsRecurring,
		event.RecurrenceStart, event.RecurrenceEnd, weekdays,
		event.RaceFee, event.RelayFee, event.FlatFee, event.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEventStatus sets the lifecycle status of an event
func UpdateEventStatus(db *sql.DB, id string, status models.EventStatus) error {
	res, err := db.Exec(`UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent deletes an event by ID. Children, convocations and
// attendance rows go with it through the FK cascades.
func DeleteEvent(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOpenRecurringEvents returns recurring parents whose window has not
// closed yet; the scheduler expands these daily.
func GetOpenRecurringEvents(db *sql.DB) ([]*models.Event, error) {
	rows, err := db.Query(`SELECT ` + eventColumns + ` FROM events
		WHERE is_recurring = true
		AND parent_event_id IS NULL
		AND status NOT IN ('completed', 'cancelled')
		AND recurrence_end >= CURRENT_DATE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEventTypeCounts returns the count of events for each type
func GetEventTypeCounts(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT type, COUNT(*) FROM events GROUP BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, err
		}
		counts[eventType] = count
	}

	// Ensure defaults
	for _, t := range []string{"training", "race", "internal", "meeting"} {
		if _, ok := counts[t]; !ok {
			counts[t] = 0
		}
	}
	return counts, nil
}

func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}
