package notification

import (
	"time"
)

// Event types carried on the Kafka notification topic.
const (
	TypeRegistrationConfirmed = "registration_confirmed"
	TypeDonationReceived      = "donation_received"
	TypeAnnouncementPublished = "announcement_published"
)

// Event is the wire payload published by the domain services and consumed
// into InAppNotification rows.
type Event struct {
	Type   string `json:"type"`
	UserID *uint  `json:"user_id,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
}

type InAppNotification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Type      string    `gorm:"type:varchar(50);not null" json:"type"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body,omitempty"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
