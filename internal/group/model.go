package group

import (
	"time"
)

// Group is a small-group record forming an optional tree via ParentGroupID.
type Group struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Description   string `gorm:"type:text" json:"description,omitempty"`
	GroupType     string `gorm:"type:varchar(50);default:other" json:"group_type"`
	ParentGroupID *uint  `gorm:"index" json:"parent_group_id,omitempty"`
	LeaderID      *uint  `json:"leader_id,omitempty"`
	MeetingDay    string `gorm:"type:varchar(30)" json:"meeting_day,omitempty"`
	MeetingTime   string `gorm:"type:varchar(5)" json:"meeting_time,omitempty"` // "HH:MM"
	Location      string `gorm:"type:varchar(255)" json:"location,omitempty"`

	Members     []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Subgroups   []Group       `gorm:"-" json:"subgroups,omitempty"`
	MemberCount int           `gorm:"-" json:"member_count"`
}

// GroupMember links a User to a Group; one membership per (group, user).
type GroupMember struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	GroupID  uint       `gorm:"not null;uniqueIndex:idx_group_member" json:"group_id"`
	UserID   uint       `gorm:"not null;uniqueIndex:idx_group_member" json:"user_id"`
	Role     string     `gorm:"type:varchar(60);not null" json:"role"`
	JoinDate *time.Time `json:"join_date,omitempty"`
}

type CreateGroupRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	GroupType     string `json:"group_type,omitempty"`
	ParentGroupID *uint  `json:"parent_group_id,omitempty"`
	LeaderID      *uint  `json:"leader_id,omitempty"`
	MeetingDay    string `json:"meeting_day,omitempty"`
	MeetingTime   string `json:"meeting_time,omitempty"`
	Location      string `json:"location,omitempty"`
}

type UpdateGroupRequest struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	GroupType     *string `json:"group_type,omitempty"`
	ParentGroupID *uint   `json:"parent_group_id,omitempty"`
	ClearParent   bool    `json:"clear_parent,omitempty"`
	LeaderID      *uint   `json:"leader_id,omitempty"`
	MeetingDay    *string `json:"meeting_day,omitempty"`
	MeetingTime   *string `json:"meeting_time,omitempty"`
	Location      *string `json:"location,omitempty"`
}

type CreateGroupMemberRequest struct {
	GroupID  uint   `json:"group_id"`
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	JoinDate string `json:"join_date,omitempty"` // "2006-01-02"
}

type UpdateGroupMemberRequest struct {
	Role     *string `json:"role,omitempty"`
	JoinDate *string `json:"join_date,omitempty"`
}
