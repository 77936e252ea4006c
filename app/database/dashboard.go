package database

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// DashboardStats holds the headline numbers shown on the dashboard
type DashboardStats struct {
	ActiveAthletes   int             `json:"active_athletes"`
	UpcomingEvents   int             `json:"upcoming_events"`
	EventsThisMonth  int             `json:"events_this_month"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
	BilledThisMonth  decimal.Decimal `json:"billed_this_month"`
	AttendanceRate   float64         `json:"attendance_rate"` // share of 'present' over all marked records
	EventTypeCounts  map[string]int  `json:"event_type_counts"`
}

// GetDashboardStats aggregates the headline numbers in a handful of
// queries; all values derive from already-persisted rows
func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := db.QueryRow(`
		SELECT COUNT(DISTINCT u.id)
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE r.name = 'athlete' AND u.is_active = true
	`).Scan(&stats.ActiveAthletes)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE starts_at >= NOW()),
			COUNT(*) FILTER (WHERE date_trunc('month', starts_at) = date_trunc('month', NOW()))
		FROM events
		WHERE status NOT IN ('cancelled')
	`).Scan(&stats.UpcomingEvents, &stats.EventsThisMonth)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE date_trunc('month', created_at) = date_trunc('month', NOW())), 0)
		FROM convocation_movements
	`).Scan(&stats.TotalBilled, &stats.BilledThisMonth)
	if err != nil {
		return nil, err
	}

	var present, total int
	err = db.QueryRow(`
		SELECT COUNT(*) FILTER (WHERE status = 'present'), COUNT(*) FROM attendances
	`).Scan(&present, &total)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		stats.AttendanceRate = float64(present) / float64(total)
	}

	counts, err := GetEventTypeCounts(db)
	if err != nil {
		return nil, err
	}
	stats.EventTypeCounts = counts

	return stats, nil
}
