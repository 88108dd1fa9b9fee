package prayer

import "time"

type Request struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        *uint     `gorm:"index" json:"user_id"`
	RequestText   string    `gorm:"type:text;not null" json:"request_text"`
	IsPublic      bool      `gorm:"default:false" json:"is_public"`
	Status        string    `gorm:"size:20;default:pending" json:"status"`
	DateSubmitted time.Time `gorm:"autoCreateTime" json:"date_submitted"`
}

func (Request) TableName() string { return "prayer_requests" }

type CreateRequest struct {
	UserID      *uint  `json:"user_id"`
	RequestText string `json:"request_text"`
	IsPublic    *bool  `json:"is_public"`
	Status      string `json:"status"`
}

type UpdateRequest struct {
	RequestText *string `json:"request_text"`
	IsPublic    *bool   `json:"is_public"`
	Status      *string `json:"status"`
}
