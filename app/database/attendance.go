package database

import (
	"database/sql"

	"club-manager/app/models"
)

// CreateOrUpdateAttendance saves a member's attendance record for an event
func CreateOrUpdateAttendance(db *sql.DB, attendance *models.Attendance) error {
	query := `INSERT INTO attendances (event_id, user_id, status, arrived_at, notes, marked_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  ON CONFLICT (event_id, user_id)
			  DO UPDATE SET status = EXCLUDED.status, arrived_at = EXCLUDED.arrived_at,
				  notes = EXCLUDED.notes, marked_by = EXCLUDED.marked_by, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		attendance.EventID, attendance.UserID, attendance.Status,
		attendance.ArrivedAt, attendance.Notes, attendance.MarkedBy,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
	return mapError(err)
}

// GetAttendanceByEvent retrieves all attendance records for an event
func GetAttendanceByEvent(db *sql.DB, eventID string) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.event_id, a.user_id, a.status, a.arrived_at, a.notes, a.marked_by,
			  a.created_at, a.updated_at, u.first_name, u.last_name
			  FROM attendances a
			  JOIN users u ON a.user_id = u.id
			  WHERE a.event_id = $1
			  ORDER BY u.last_name, u.first_name`

	rows, err := db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record := &models.Attendance{}
		var firstName, lastName string
		err := rows.Scan(
			&record.ID, &record.EventID, &record.UserID, &record.Status, &record.ArrivedAt,
			&record.Notes, &record.MarkedBy, &record.CreatedAt, &record.UpdatedAt,
			&firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		record.User = &models.User{
			ID:        record.UserID,
			FirstName: firstName,
			LastName:  lastName,
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetAttendanceByEventAndUser retrieves a specific member's attendance for
// an event, nil when never marked
func GetAttendanceByEventAndUser(db *sql.DB, eventID, userID string) (*models.Attendance, error) {
	query := `SELECT id, event_id, user_id, status, arrived_at, notes, marked_by, created_at, updated_at
			  FROM attendances
			  WHERE event_id = $1 AND user_id = $2`

	record := &models.Attendance{}
	err := db.QueryRow(query, eventID, userID).Scan(
		&record.ID, &record.EventID, &record.UserID, &record.Status, &record.ArrivedAt,
		&record.Notes, &record.MarkedBy, &record.CreatedAt, &record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// AttendanceStats summarises an event's attendance by status
type AttendanceStats struct {
	EventID   string `json:"event_id"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Justified int    `json:"justified"`
	Total     int    `json:"total"`
}

// GetAttendanceStatsByEvent aggregates attendance counts for an event
func GetAttendanceStatsByEvent(db *sql.DB, eventID string) (*AttendanceStats, error) {
	stats := &AttendanceStats{EventID: eventID}
	query := `SELECT
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent'),
			  COUNT(*) FILTER (WHERE status = 'justified'),
			  COUNT(*)
			  FROM attendances WHERE event_id = $1`

	err := db.QueryRow(query, eventID).Scan(&stats.Present, &stats.Absent, &stats.Justified, &stats.Total)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// MemberAttendanceReport is one event line of a member's history
type MemberAttendanceReport struct {
	EventID    string                  `json:"event_id"`
	EventTitle string                  `json:"event_title"`
	EventType  models.EventType        `json:"event_type"`
	StartsAt   string                  `json:"starts_at"`
	Status     models.AttendanceStatus `json:"status"`
	Notes      string                  `json:"notes,omitempty"`
}

// GetMemberAttendanceReport lists a member's attendance across events,
// newest first
func GetMemberAttendanceReport(db *sql.DB, userID string, limit int) ([]*MemberAttendanceReport, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT e.id, e.title, e.type, TO_CHAR(e.starts_at, 'YYYY-MM-DD'), a.status, a.notes
			  FROM attendances a
			  JOIN events e ON e.id = a.event_id
			  WHERE a.user_id = $1
			  ORDER BY e.starts_at DESC
			  LIMIT $2`

	rows, err := db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*MemberAttendanceReport
	for rows.Next() {
		line := &MemberAttendanceReport{}
		err := rows.Scan(&line.EventID, &line.EventTitle, &line.EventType, &line.StartsAt, &line.Status, &line.Notes)
		if err != nil {
			return nil, err
		}
		report = append(report, line)
	}
	return report, rows.Err()
}
