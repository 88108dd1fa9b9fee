package ministry

import (
	"time"

	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

var LeaderRoles = []string{"leader", "co_leader", "director", "coordinator"}

type Service interface {
	List(activeOnly bool) ([]Ministry, error)
	Get(id uint) (*Ministry, error)
	Create(req CreateMinistryRequest) (*Ministry, error)
	Update(id uint, req UpdateMinistryRequest) (*Ministry, error)
	Delete(id uint) error

	ListLeaders(ministryID uint) ([]Leader, error)
	AddLeader(req CreateLeaderRequest) (*Leader, error)
	UpdateLeader(id uint, req UpdateLeaderRequest) (*Leader, error)
	RemoveLeader(id uint) error

	ListRoster(ministryID uint) ([]Member, error)
	AddMember(req CreateMemberRequest) (*Member, error)
	UpdateMember(id uint, req UpdateMemberRequest) (*Member, error)
	RemoveMember(id uint) error
}

type service struct {
	repo  *Repository
	users *user.Repository
}

func NewService(repo *Repository, users *user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) List(activeOnly bool) ([]Ministry, error) { return s.repo.List(activeOnly) }

func (s *service) Get(id uint) (*Ministry, error) { return s.repo.FindByID(id) }

func validateMinistryFields(errs validation.Errors, req CreateMinistryRequest) {
	validation.Required(errs, "name", req.Name)
	validation.Length(errs, "name", req.Name, 1, 255)
	validation.MaxLength(errs, "ministry_type", req.MinistryType, 50)
	if req.ContactEmail != "" {
		validation.Email(errs, "contact_email", req.ContactEmail)
	}
	if req.ContactPhone != "" {
		validation.MaxLength(errs, "contact_phone", req.ContactPhone, 20)
		validation.Phone(errs, "contact_phone", req.ContactPhone)
	}
	validation.MaxLength(errs, "meeting_schedule", req.MeetingSchedule, 255)
	validation.MaxLength(errs, "meeting_location", req.MeetingLocation, 255)
	validation.Min(errs, "display_order", req.DisplayOrder, 0)
	if req.ImageURL != "" {
		validation.HTTPURL(errs, "image_url", req.ImageURL)
	}
}

func (s *service) Create(req CreateMinistryRequest) (*Ministry, error) {
	errs := validation.Errors{}
	validateMinistryFields(errs, req)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	m := &Ministry{
		Name:            req.Name,
		Description:     req.Description,
		MinistryType:    req.MinistryType,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		MeetingSchedule: req.MeetingSchedule,
		MeetingLocation: req.MeetingLocation,
		IsActive:        true,
		DisplayOrder:    req.DisplayOrder,
		ImageURL:        req.ImageURL,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		m.IsFeatured = *req.IsFeatured
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return s.repo.FindByID(m.ID)
}

func (s *service) Update(id uint, req UpdateMinistryRequest) (*Ministry, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Name != nil {
		validation.Required(errs, "name", *req.Name)
		validation.Length(errs, "name", *req.Name, 1, 255)
	}
	if req.MinistryType != nil {
		validation.MaxLength(errs, "ministry_type", *req.MinistryType, 50)
	}
	if req.ContactEmail != nil && *req.ContactEmail != "" {
		validation.Email(errs, "contact_email", *req.ContactEmail)
	}
	if req.ContactPhone != nil && *req.ContactPhone != "" {
		validation.MaxLength(errs, "contact_phone", *req.ContactPhone, 20)
		validation.Phone(errs, "contact_phone", *req.ContactPhone)
	}
	if req.MeetingSchedule != nil {
		validation.MaxLength(errs, "meeting_schedule", *req.MeetingSchedule, 255)
	}
	if req.MeetingLocation != nil {
		validation.MaxLength(errs, "meeting_location", *req.MeetingLocation, 255)
	}
	if req.DisplayOrder != nil {
		validation.Min(errs, "display_order", *req.DisplayOrder, 0)
	}
	if req.ImageURL != nil && *req.ImageURL != "" {
		validation.HTTPURL(errs, "image_url", *req.ImageURL)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.MinistryType != nil {
		m.MinistryType = *req.MinistryType
	}
	if req.ContactEmail != nil {
		m.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		m.ContactPhone = *req.ContactPhone
	}
	if req.MeetingSchedule != nil {
		m.MeetingSchedule = *req.MeetingSchedule
	}
	if req.MeetingLocation != nil {
		m.MeetingLocation = *req.MeetingLocation
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		m.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		m.DisplayOrder = *req.DisplayOrder
	}
	if req.ImageURL != nil {
		m.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(m); err != nil {
		return nil, err
	}
	return s.repo.FindByID(m.ID)
}

func (s *service) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func parseDate(errs validation.Errors, field, value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, "Invalid date format. Use YYYY-MM-DD")
		return nil
	}
	return &t
}

// checkPair verifies the ministry and user both exist before a join row is
// created, so missing references surface as field errors.
func (s *service) checkPair(errs validation.Errors, ministryID, userID uint) (bool, error) {
	ministryExists, err := s.repo.Exists(ministryID)
	if err != nil {
		return false, err
	}
	if !ministryExists {
		errs.Add("ministry_id", "Ministry does not exist")
	}
	userExists, err := s.users.Exists(userID)
	if err != nil {
		return false, err
	}
	if !userExists {
		errs.Add("user_id", "User does not exist")
	}
	return ministryExists && userExists, nil
}

// ===========================
// Leaders

func (s *service) ListLeaders(ministryID uint) ([]Leader, error) {
	return s.repo.ListLeaders(ministryID)
}

func (s *service) AddLeader(req CreateLeaderRequest) (*Leader, error) {
	if req.Role == "" {
		req.Role = "leader"
	}

	errs := validation.Errors{}
	validation.OneOf(errs, "role", req.Role, LeaderRoles...)
	startDate := parseDate(errs, "start_date", req.StartDate)
	endDate := parseDate(errs, "end_date", req.EndDate)
	if startDate != nil && endDate != nil && !endDate.After(*startDate) {
		errs.Add("end_date", "End date must be after start date")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	bothExist, err := s.checkPair(errs, req.MinistryID, req.UserID)
	if err != nil {
		return nil, err
	}
	if bothExist {
		taken, err := s.repo.LeadershipTaken(req.MinistryID, req.UserID, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("user_id", "User is already a leader of this ministry")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if startDate == nil {
		now := time.Now()
		startDate = &now
	}
	l := &Leader{
		MinistryID: req.MinistryID,
		UserID:     req.UserID,
		Role:       req.Role,
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   true,
	}
	if err := s.repo.CreateLeader(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) UpdateLeader(id uint, req UpdateLeaderRequest) (*Leader, error) {
	l, err := s.repo.FindLeaderByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Role != nil {
		validation.OneOf(errs, "role", *req.Role, LeaderRoles...)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		endDate = parseDate(errs, "end_date", *req.EndDate)
		if endDate != nil && l.StartDate != nil && !endDate.After(*l.StartDate) {
			errs.Add("end_date", "End date must be after start date")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Role != nil {
		l.Role = *req.Role
	}
	if endDate != nil {
		l.EndDate = endDate
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if err := s.repo.UpdateLeader(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) RemoveLeader(id uint) error {
	if _, err := s.repo.FindLeaderByID(id); err != nil {
		return err
	}
	return s.repo.DeleteLeader(id)
}

// ===========================
// Members

func (s *service) ListRoster(ministryID uint) ([]Member, error) {
	return s.repo.ListRoster(ministryID)
}

func (s *service) AddMember(req CreateMemberRequest) (*Member, error) {
	errs := validation.Errors{}
	validation.MaxLength(errs, "role", req.Role, 100)
	joinDate := parseDate(errs, "join_date", req.JoinDate)
	validation.NotInFuture(errs, "join_date", joinDate)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	bothExist, err := s.checkPair(errs, req.MinistryID, req.UserID)
	if err != nil {
		return nil, err
	}
	if bothExist {
		taken, err := s.repo.MembershipTaken(req.MinistryID, req.UserID, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("user_id", "User is already a member of this ministry")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if joinDate == nil {
		now := time.Now()
		joinDate = &now
	}
	m := &Member{
		MinistryID: req.MinistryID,
		UserID:     req.UserID,
		Role:       req.Role,
		Notes:      req.Notes,
		JoinDate:   joinDate,
		IsActive:   true,
	}
	if err := s.repo.CreateMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateMember(id uint, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.FindMemberByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Role != nil {
		validation.MaxLength(errs, "role", *req.Role, 100)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Role != nil {
		m.Role = *req.Role
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
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
