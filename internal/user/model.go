package user

import (
	"time"
)

// User is the account record. The bcrypt hash never serializes.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Owned profile, deleted with the user.
	Member *Member `json:"member,omitempty"`

	FullName string `gorm:"-" json:"full_name,omitempty"`
}

// Member is the optional profile owned by exactly one User.
type Member struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone     string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Address   string     `gorm:"type:text" json:"address,omitempty"`
	JoinDate  *time.Time `json:"join_date,omitempty"`
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

type CreateMemberRequest struct {
	UserID    uint   `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	JoinDate  string `json:"join_date,omitempty"` // "2006-01-02"
}

type UpdateMemberRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	JoinDate  *string `json:"join_date,omitempty"`
}
