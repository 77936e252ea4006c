package models

import "time"

// Attendance represents a member's attendance for an event
type Attendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	EventID   string           `json:"event_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UserID    string           `json:"user_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent justified"`
	ArrivedAt *time.Time       `json:"arrived_at,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	MarkedBy  *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	User      *User            `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Event     *Event           `json:"event,omitempty" gorm:"foreignKey:EventID;references:ID"`
}
