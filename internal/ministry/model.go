package ministry

import "time"

type Ministry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	MinistryType    string    `gorm:"size:50" json:"ministry_type"`
	ContactEmail    string    `gorm:"size:255" json:"contact_email"`
	ContactPhone    string    `gorm:"size:20" json:"contact_phone"`
	MeetingSchedule string    `gorm:"size:255" json:"meeting_schedule"`
	MeetingLocation string    `gorm:"size:255" json:"meeting_location"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsFeatured      bool      `gorm:"default:false" json:"is_featured"`
	DisplayOrder    int       `gorm:"default:0" json:"display_order"`
	ImageURL        string    `gorm:"size:500" json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Leaders []Leader `gorm:"foreignKey:MinistryID" json:"leaders,omitempty"`
	Members []Member `gorm:"foreignKey:MinistryID" json:"members,omitempty"`

	MemberCount int `gorm:"-" json:"member_count"`
}

// Leader binds a user to a ministry leadership role. One leadership row per
// (ministry, user) pair.
type Leader struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MinistryID uint       `gorm:"not null;uniqueIndex:idx_ministry_leader" json:"ministry_id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_ministry_leader" json:"user_id"`
	Role       string     `gorm:"size:50;default:leader" json:"role"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Leader) TableName() string { return "ministry_leaders" }

// Member binds a user to a ministry roster. One row per (ministry, user) pair.
type Member struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MinistryID uint       `gorm:"not null;uniqueIndex:idx_ministry_member" json:"ministry_id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_ministry_member" json:"user_id"`
	Role       string     `gorm:"size:100" json:"role"`
	Notes      string     `gorm:"type:text" json:"notes"`
	JoinDate   *time.Time `json:"join_date"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Member) TableName() string { return "ministry_members" }

// ===========================
// Request payloads

type CreateMinistryRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	MinistryType    string `json:"ministry_type"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	MeetingSchedule string `json:"meeting_schedule"`
	MeetingLocation string `json:"meeting_location"`
	IsActive        *bool  `json:"is_active"`
	IsFeatured      *bool  `json:"is_featured"`
	DisplayOrder    int    `json:"display_order"`
	ImageURL        string `json:"image_url"`
}

type UpdateMinistryRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	MinistryType    *string `json:"ministry_type"`
	ContactEmail    *string `json:"contact_email"`
	ContactPhone    *string `json:"contact_phone"`
	MeetingSchedule *string `json:"meeting_schedule"`
	MeetingLocation *string `json:"meeting_location"`
	IsActive        *bool   `json:"is_active"`
	IsFeatured      *bool   `json:"is_featured"`
	DisplayOrder    *int    `json:"display_order"`
	ImageURL        *string `json:"image_url"`
}

type CreateLeaderRequest struct {
	MinistryID uint   `json:"ministry_id"`
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type UpdateLeaderRequest struct {
	Role     *string `json:"role"`
	EndDate  *string `json:"end_date"`
	IsActive *bool   `json:"is_active"`
}

type CreateMemberRequest struct {
	MinistryID uint   `json:"ministry_id"`
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	Notes      string `json:"notes"`
	JoinDate   string `json:"join_date"`
}

type UpdateMemberRequest struct {
	Role     *string `json:"role"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"is_active"`
}
