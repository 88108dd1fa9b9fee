package event

import (
	"time"
)

type Event struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	StartDatetime time.Time  `gorm:"not null;index" json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	Location      string     `gorm:"type:text" json:"location,omitempty"`
	MaxAttendees  *int       `json:"max_attendees,omitempty"`

	Registrations []Registration `gorm:"foreignKey:EventID" json:"registrations,omitempty"`

	// Derived at serialization time; only confirmed registrations count
	// against the cap.
	RegistrationCount int  `gorm:"-" json:"registration_count"`
	IsFull            bool `gorm:"-" json:"is_full"`
}

// Registration links a User to an Event; one row per (event, user).
type Registration struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	EventID          uint      `gorm:"not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_event_user" json:"user_id"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`
	GuestsCount      int       `gorm:"default:0" json:"guests_count"`
	Status           string    `gorm:"type:varchar(20);default:confirmed" json:"status"`
}

type CreateEventRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	StartDatetime time.Time  `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	Location      string     `json:"location,omitempty"`
	MaxAttendees  *int       `json:"max_attendees,omitempty"`
}

type UpdateEventRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	Location      *string    `json:"location,omitempty"`
	MaxAttendees  *int       `json:"max_attendees,omitempty"`
}

type CreateRegistrationRequest struct {
	EventID     uint   `json:"event_id"`
	UserID      uint   `json:"user_id"`
	GuestsCount int    `json:"guests_count,omitempty"`
	Status      string `json:"status,omitempty"`
}

type UpdateRegistrationRequest struct {
	GuestsCount *int    `json:"guests_count,omitempty"`
	Status      *string `json:"status,omitempty"`
}
