package user

import (
	"time"

	"github.com/gracechapel/church-management-backend/internal/validation"
)

type Service interface {
	ListUsers() ([]User, error)
	GetUser(id uint) (*User, error)
	UpdateUser(id uint, req UpdateUserRequest) (*User, error)
	DeleteUser(id uint) error

	ListMembers() ([]Member, error)
	GetMember(id uint) (*Member, error)
	CreateMember(req CreateMemberRequest) (*Member, error)
	UpdateMember(id uint, req UpdateMemberRequest) (*Member, error)
	DeleteMember(id uint) error
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers() ([]User, error) {
	return s.repo.ListUsers()
}

func (s *service) GetUser(id uint) (*User, error) {
	return s.repo.FindByID(id)
}

// UpdateUser applies a partial update. id and created_at are never client
// settable; uniqueness checks exempt the user's own current values.
func (s *service) UpdateUser(id uint, req UpdateUserRequest) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Username != nil {
		validation.Required(errs, "username", *req.Username)
		validation.Length(errs, "username", *req.Username, 1, 120)
	}
	if req.Email != nil {
		validation.Required(errs, "email", *req.Email)
		validation.Email(errs, "email", *req.Email)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Username != nil {
		taken, err := s.repo.UsernameTaken(*req.Username, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("username", "Username already taken")
		}
	}
	if req.Email != nil {
		taken, err := s.repo.EmailTaken(*req.Email, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("email", "Email already registered")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return s.repo.FindByID(u.ID)
}

func (s *service) DeleteUser(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ===========================
// Member profiles

func (s *service) ListMembers() ([]Member, error) {
	return s.repo.ListMembers()
}

func (s *service) GetMember(id uint) (*Member, error) {
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

func (s *service) CreateMember(req CreateMemberRequest) (*Member, error) {
	errs := validation.Errors{}
	validation.Required(errs, "first_name", req.FirstName)
	validation.Length(errs, "first_name", req.FirstName, 1, 100)
	validation.Required(errs, "last_name", req.LastName)
	validation.Length(errs, "last_name", req.LastName, 1, 100)
	validation.Required(errs, "phone", req.Phone)
	validation.MaxLength(errs, "phone", req.Phone, 20)
	validation.Phone(errs, "phone", req.Phone)
	validation.MaxLength(errs, "address", req.Address, 500)
	joinDate := parseJoinDate(errs, req.JoinDate)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.checkMemberConflicts(errs, req.UserID, req.Phone, 0); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	m := &Member{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		JoinDate:  joinDate,
	}
	if err := s.repo.CreateMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) checkMemberConflicts(errs validation.Errors, userID uint, phone string, excludeID uint) error {
	exists, err := s.repo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("user_id", "User does not exist")
	} else {
		has, err := s.repo.HasMemberProfile(userID, excludeID)
		if err != nil {
			return err
		}
		if has {
			errs.Add("user_id", "User already has a member profile")
		}
	}

	taken, err := s.repo.PhoneTaken(phone, excludeID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("phone", "Phone number already registered")
	}
	return nil
}

func (s *service) UpdateMember(id uint, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.FindMemberByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.FirstName != nil {
		validation.Required(errs, "first_name", *req.FirstName)
		validation.Length(errs, "first_name", *req.FirstName, 1, 100)
	}
	if req.LastName != nil {
		validation.Required(errs, "last_name", *req.LastName)
		validation.Length(errs, "last_name", *req.LastName, 1, 100)
	}
	if req.Phone != nil {
		validation.Required(errs, "phone", *req.Phone)
		validation.MaxLength(errs, "phone", *req.Phone, 20)
		validation.Phone(errs, "phone", *req.Phone)
	}
	if req.Address != nil {
		validation.MaxLength(errs, "address", *req.Address, 500)
	}
	var joinDate *time.Time
	if req.JoinDate != nil {
		joinDate = parseJoinDate(errs, *req.JoinDate)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Phone != nil {
		taken, err := s.repo.PhoneTaken(*req.Phone, m.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("phone", "Phone number already registered")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		m.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		m.LastName = *req.LastName
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Address != nil {
		m.Address = *req.Address
	}
	if joinDate != nil {
		m.JoinDate = joinDate
	}
	if err := s.repo.UpdateMember(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteMember(id uint) error {
	if _, err := s.repo.FindMemberByID(id); err != nil {
		return err
	}
	return s.repo.DeleteMember(id)
}
