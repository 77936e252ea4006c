package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CivilDate is a calendar date (YYYY-MM-DD) with no time-of-day and no
// timezone conversion. Recurrence windows compare dates in the club's
// local civil calendar, so the wall-clock components are always zero.
type CivilDate struct {
	time.Time
}

// NewCivilDate builds a CivilDate from year, month and day.
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// CivilDateOf truncates a timestamp to its calendar date.
func CivilDateOf(t time.Time) CivilDate {
	return NewCivilDate(t.Year(), t.Month(), t.Day())
}

// UnmarshalJSON parses dates in YYYY-MM-DD format
func (cd *CivilDate) UnmarshalJSON(data []byte) error {
	// Handle null or empty
	s := string(data)
	if s == "null" || s == "" || s == `""` {
		cd.Time = time.Time{}
		return nil
	}

	// Remove quotes
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}

	cd.Time = t
	return nil
}

// MarshalJSON formats dates in YYYY-MM-DD format
func (cd CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, cd.Time.Format("2006-01-02"))), nil
}

// Scan implements the Scanner interface for database reading
func (cd *CivilDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}

	if t, ok := value.(time.Time); ok {
		cd.Time = NewCivilDate(t.Year(), t.Month(), t.Day()).Time
		return nil
	}

	return fmt.Errorf("cannot scan %T into CivilDate", value)
}

// Value implements the Valuer interface for database writing
func (cd CivilDate) Value() (driver.Value, error) {
	return cd.Time, nil
}

// IsZero reports whether the date is unset.
func (cd CivilDate) IsZero() bool {
	return cd.Time.IsZero()
}

// Weekday returns the day of week with Monday = 0 .. Sunday = 6,
// the numbering used by recurrence_weekdays.
func (cd CivilDate) Weekday() int {
	return (int(cd.Time.Weekday()) + 6) % 7
}

// AddDays returns the date shifted by n calendar days.
func (cd CivilDate) AddDays(n int) CivilDate {
	return CivilDate{cd.Time.AddDate(0, 0, n)}
}

// After reports whether cd falls after other.
func (cd CivilDate) After(other CivilDate) bool {
	return cd.Time.After(other.Time)
}
