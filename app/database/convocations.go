package database

import (
	"database/sql"

	"club-manager/app/models"
)

// CreateConvocationGroup inserts a group and its initial athlete entries
// in one transaction
func CreateConvocationGroup(db *sql.DB, group *models.ConvocationGroup) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO convocation_groups (event_id, pricing_mode, race_fee, relay_fee, flat_fee, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(query,
		group.EventID, group.PricingMode, group.RaceFee, group.RelayFee, group.FlatFee,
		group.Notes, nullableID(group.CreatedBy),
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	for _, entry := range group.Athletes {
		entry.GroupID = group.ID
		err = tx.QueryRow(`
			INSERT INTO convocation_athletes (group_id, athlete_id, races, relay_legs, confirmed, present, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`, entry.GroupID, entry.AthleteID, entry.Races, entry.RelayLegs, entry.Confirmed, entry.Present,
		).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

// GetConvocationGroupByID retrieves a group with its athlete entries
func GetConvocationGroupByID(db *sql.DB, id string) (*models.ConvocationGroup, error) {
	group := &models.ConvocationGroup{}
	var createdBy sql.NullString
	err := db.QueryRow(`
		SELECT id, event_id, pricing_mode, race_fee, relay_fee, flat_fee, notes, created_by, created_at, updated_at
		FROM convocation_groups WHERE id = $1
	`, id).Scan(
		&group.ID, &group.EventID, &group.PricingMode, &group.RaceFee, &group.RelayFee,
		&group.FlatFee, &group.Notes, &createdBy, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	group.CreatedBy = createdBy.String

	entries, err := GetConvocationAthletes(db, id)
	if err != nil {
		return nil, err
	}
	group.Athletes = entries
	return group, nil
}

// GetConvocationGroupsByEvent lists all groups of one event
func GetConvocationGroupsByEvent(db *sql.DB, eventID string) ([]*models.ConvocationGroup, error) {
	rows, err := db.Query(`
		SELECT id, event_id, pricing_mode, race_fee, relay_fee, flat_fee, notes, created_by, created_at, updated_at
		FROM convocation_groups WHERE event_id = $1 ORDER BY created_at ASC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.ConvocationGroup
	for rows.Next() {
		group := &models.ConvocationGroup{}
		var createdBy sql.NullString
		err := rows.Scan(
			&group.ID, &group.EventID, &group.PricingMode, &group.RaceFee, &group.RelayFee,
			&group.FlatFee, &group.Notes, &createdBy, &group.CreatedAt, &group.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		group.CreatedBy = createdBy.String
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GetConvocationAthletes lists the entries of a group joined with names
func GetConvocationAthletes(db *sql.DB, groupID string) ([]*models.ConvocationAthlete, error) {
	rows, err := db.Query(`
		SELECT ca.id, ca.group_id, ca.athlete_id, ca.races, ca.relay_legs, ca.confirmed, ca.present,
			ca.created_at, ca.updated_at, u.first_name, u.last_name, u.age_group
		FROM convocation_athletes ca
		JOIN users u ON u.id = ca.athlete_id
		WHERE ca.group_id = $1
		ORDER BY u.last_name, u.first_name
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ConvocationAthlete
	for rows.Next() {
		entry := &models.ConvocationAthlete{}
		var firstName, lastName, ageGroup string
		err := rows.Scan(
			&entry.ID, &entry.GroupID, &entry.AthleteID, &entry.Races, &entry.RelayLegs,
			&entry.Confirmed, &entry.Present, &entry.CreatedAt, &entry.UpdatedAt,
			&firstName, &lastName, &ageGroup,
		)
		if err != nil {
			return nil, err
		}
		entry.Athlete = &models.User{
			ID:        entry.AthleteID,
			FirstName: firstName,
			LastName:  lastName,
			AgeGroup:  ageGroup,
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// AddConvocationAthlete inserts one athlete entry into a group.
// A second entry for the same athlete hits the unique constraint and
// comes back as ErrDuplicate.
func AddConvocationAthlete(db *sql.DB, entry *models.ConvocationAthlete) error {
	err := db.QueryRow(`
		INSERT INTO convocation_athletes (group_id, athlete_id, races, relay_legs, confirmed, present, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, entry.GroupID, entry.AthleteID, entry.Races, entry.RelayLegs, entry.Confirmed, entry.Present,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	return mapError(err)
}

// UpdateConvocationAthlete updates counts and flags of one entry
func UpdateConvocationAthlete(db *sql.DB, entry *models.ConvocationAthlete) error {
	res, err := db.Exec(`
		UPDATE convocation_athletes
		SET races = $1, relay_legs = $2, confirmed = $3, present = $4, updated_at = NOW()
		WHERE group_id = $5 AND athlete_id = $6
	`, entry.Races, entry.RelayLegs, entry.Confirmed, entry.Present, entry.GroupID, entry.AthleteID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveConvocationAthlete removes one athlete entry from a group
func RemoveConvocationAthlete(db *sql.DB, groupID, athleteID string) error {
	res, err := db.Exec(`DELETE FROM convocation_athletes WHERE group_id = $1 AND athlete_id = $2`,
		groupID, athleteID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteConvocationGroup deletes a group; entries and movements cascade
func DeleteConvocationGroup(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM convocation_groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceMovements swaps a group's billing lines for a freshly computed
// set. Delete-and-insert in one transaction keeps regeneration idempotent:
// either the new complete set is committed or the old one stays.
func ReplaceMovements(db *sql.DB, groupID string, movements []*models.ConvocationMovement) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM convocation_movements WHERE group_id = $1`, groupID); err != nil {
		return err
	}

	for _, m := range movements {
		err = tx.QueryRow(`
			INSERT INTO convocation_movements (group_id, event_id, athlete_id, amount, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING id, created_at, updated_at
		`, m.GroupID, m.EventID, m.AthleteID, m.Amount, m.Description,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

// GetMovementsByGroup lists the billing lines of one group
func GetMovementsByGroup(db *sql.DB, groupID string) ([]*models.ConvocationMovement, error) {
	rows, err := db.Query(`
		SELECT m.id, m.group_id, m.event_id, m.athlete_id, m.amount, m.description,
			m.created_at, m.updated_at, u.first_name, u.last_name
		FROM convocation_movements m
		JOIN users u ON u.id = m.athlete_id
		WHERE m.group_id = $1
		ORDER BY u.last_name, u.first_name
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovements(rows)
}

// GetMovementsByAthlete lists an athlete's billing lines across all
// events, newest first (the account statement view)
func GetMovementsByAthlete(db *sql.DB, athleteID string) ([]*models.ConvocationMovement, error) {
	rows, err := db.Query(`
		SELECT m.id, m.group_id, m.event_id, m.athlete_id, m.amount, m.description,
			m.created_at, m.updated_at, u.first_name, u.last_name
		FROM convocation_movements m
		JOIN users u ON u.id = m.athlete_id
		WHERE m.athlete_id = $1
		ORDER BY m.created_at DESC
	`, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows *sql.Rows) ([]*models.ConvocationMovement, error) {
	var movements []*models.ConvocationMovement
	for rows.Next() {
		m := &models.ConvocationMovement{}
		var firstName, lastName string
		err := rows.Scan(
			&m.ID, &m.GroupID, &m.EventID, &m.AthleteID, &m.Amount, &m.Description,
			&m.CreatedAt, &m.UpdatedAt, &firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		m.Athlete = &models.User{ID: m.AthleteID, FirstName: firstName, LastName: lastName}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
