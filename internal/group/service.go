package group

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

var GroupTypes = []string{"cell", "youth", "men", "women", "other"}

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var MemberRoles = []string{"leader", "co_leader", "member"}

type Service interface {
	List() ([]Group, error)
	Get(id uint) (*Group, error)
	Create(req CreateGroupRequest) (*Group, error)
	Update(id uint, req UpdateGroupRequest) (*Group, error)
	Delete(id uint) error

	ListMembers(groupID uint) ([]GroupMember, error)
	GetMember(id uint) (*GroupMember, error)
	AddMember(req CreateGroupMemberRequest) (*GroupMember, error)
	UpdateMember(id uint, req UpdateGroupMemberRequest) (*GroupMember, error)
	RemoveMember(id uint) error
}

type service struct {
	repo  *Repository
	users *user.Repository
}

func NewService(repo *Repository, users *user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) List() ([]Group, error) { return s.repo.List() }

func (s *service) Get(id uint) (*Group, error) { return s.repo.FindByID(id) }

func validateGroupFields(errs validation.Errors, name, groupType, meetingDay, meetingTime, location string) {
	validation.Required(errs, "name", name)
	validation.Length(errs, "name", name, 1, 255)
	validation.OneOf(errs, "group_type", groupType, GroupTypes...)
	validation.OneOf(errs, "meeting_day", meetingDay, Weekdays...)
	validation.TimeOfDay(errs, "meeting_time", meetingTime)
	validation.MaxLength(errs, "location", location, 255)
}

// checkParent enforces the tree invariants: the parent must exist, a group
// cannot be its own parent, and the direct parent-of-parent must not point
// back at the group. The guard is intentionally one level deep.
func (s *service) checkParent(errs validation.Errors, parentID, selfID uint) error {
	if selfID != 0 && parentID == selfID {
		errs.Add("parent_group_id", "Group cannot be its own parent")
		return nil
	}

	parent, err := s.repo.FindByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errs.Add("parent_group_id", "Parent group does not exist")
			return nil
		}
		return err
	}

	if selfID != 0 && parent.ParentGroupID != nil && *parent.ParentGroupID == selfID {
		errs.Add("parent_group_id", "Circular parent-child relationship detected")
	}
	return nil
}

func (s *service) checkLeader(errs validation.Errors, leaderID uint) error {
	exists, err := s.users.Exists(leaderID)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("leader_id", "Leader does not exist")
	}
	return nil
}

func (s *service) Create(req CreateGroupRequest) (*Group, error) {
	if req.GroupType == "" {
		req.GroupType = "other"
	}

	errs := validation.Errors{}
	validateGroupFields(errs, req.Name, req.GroupType, req.MeetingDay, req.MeetingTime, req.Location)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.ParentGroupID != nil {
		if err := s.checkParent(errs, *req.ParentGroupID, 0); err != nil {
			return nil, err
		}
	}
	if req.LeaderID != nil {
		if err := s.checkLeader(errs, *req.LeaderID); err != nil {
			return nil, err
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	g := &Group{
		Name:          req.Name,
		Description:   req.Description,
		GroupType:     req.GroupType,
		ParentGroupID: req.ParentGroupID,
		LeaderID:      req.LeaderID,
		MeetingDay:    req.MeetingDay,
		MeetingTime:   req.MeetingTime,
		Location:      req.Location,
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return s.repo.FindByID(g.ID)
}

func (s *service) Update(id uint, req UpdateGroupRequest) (*Group, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Name != nil {
		validation.Required(errs, "name", *req.Name)
		validation.Length(errs, "name", *req.Name, 1, 255)
	}
	if req.GroupType != nil {
		validation.OneOf(errs, "group_type", *req.GroupType, GroupTypes...)
	}
	if req.MeetingDay != nil {
		validation.OneOf(errs, "meeting_day", *req.MeetingDay, Weekdays...)
	}
	if req.MeetingTime != nil {
		validation.TimeOfDay(errs, "meeting_time", *req.MeetingTime)
	}
	if req.Location != nil {
		validation.MaxLength(errs, "location", *req.Location, 255)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.ParentGroupID != nil {
		if err := s.checkParent(errs, *req.ParentGroupID, g.ID); err != nil {
			return nil, err
		}
	}
	if req.LeaderID != nil {
		if err := s.checkLeader(errs, *req.LeaderID); err != nil {
			return nil, err
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.GroupType != nil {
		g.GroupType = *req.GroupType
	}
	if req.ClearParent {
		g.ParentGroupID = nil
	} else if req.ParentGroupID != nil {
		g.ParentGroupID = req.ParentGroupID
	}
	if req.LeaderID != nil {
		g.LeaderID = req.LeaderID
	}
	if req.MeetingDay != nil {
		g.MeetingDay = *req.MeetingDay
	}
	if req.MeetingTime != nil {
		g.MeetingTime = *req.MeetingTime
	}
	if req.Location != nil {
		g.Location = *req.Location
	}

	if err := s.repo.Update(g); err != nil {
		return nil, err
	}
	return s.repo.FindByID(g.ID)
}

func (s *service) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ===========================
// Memberships

func (s *service) ListMembers(groupID uint) ([]GroupMember, error) {
	return s.repo.ListMembers(groupID)
}

func (s *service) GetMember(id uint) (*GroupMember, error) {
	return s.repo.FindMemberByID(id)
}

func parseJoinDate(errs validation.Errors, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add("join_date", "Invalid date format. Use YYYY-MM-DD")
		return nil
	}
	validation.NotInFuture(errs, "join_date", &t)
	return &t
}

func (s *service) AddMember(req CreateGroupMemberRequest) (*GroupMember, error) {
	errs := validation.Errors{}
	validation.Required(errs, "role", req.Role)
	validation.OneOf(errs, "role", req.Role, MemberRoles...)
	joinDate := parseJoinDate(errs, req.JoinDate)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	groupExists, err := s.repo.Exists(req.GroupID)
	if err != nil {
		return nil, err
	}
	if !groupExists {
		errs.Add("group_id", "Group does not exist")
	}
	userExists, err := s.users.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		errs.Add("user_id", "User does not exist")
	}
	if groupExists && userExists {
		taken, err := s.repo.MembershipTaken(req.GroupID, req.UserID, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("user_id", "User is already a member of this group")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if joinDate == nil {
		now := time.Now()
		joinDate = &now
	}
	m := &GroupMember{
		GroupID:  req.GroupID,
		UserID:   req.UserID,
		Role:     req.Role,
		JoinDate: joinDate,
	}
	if err := s.repo.CreateMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateMember(id uint, req UpdateGroupMemberRequest) (*GroupMember, error) {
	m, err := s.repo.FindMemberByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Role != nil {
		validation.Required(errs, "role", *req.Role)
		validation.OneOf(errs, "role", *req.Role, MemberRoles...)
	}
	var joinDate *time.Time
	if req.JoinDate != nil {
		joinDate = parseJoinDate(errs, *req.JoinDate)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Role != nil {
		m.Role = *req.Role
	}
	if joinDate != nil {
		m.JoinDate = joinDate
	}
	if err := s.repo.UpdateMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) RemoveMember(id uint) error {
	if _, err := s.repo.FindMemberByID(id); err != nil {
		return err
	}
	return s.repo.DeleteMember(id)
}
