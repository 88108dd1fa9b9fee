package prayer

import (
	"strings"

	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

var Statuses = []string{"pending", "answered"}

// inappropriateWords is a minimal screen; a real profanity filter can slot in
// behind the same check.
var inappropriateWords = []string{"spam", "viagra", "casino"}

type Service interface {
	List(publicOnly bool, status string) ([]Request, error)
	Get(id uint) (*Request, error)
	Create(req CreateRequest) (*Request, error)
	Update(id uint, req UpdateRequest) (*Request, error)
	Delete(id uint) error
}

type service struct {
	repo  *Repository
	users *user.Repository
}

func NewService(repo *Repository, users *user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) List(publicOnly bool, status string) ([]Request, error) {
	return s.repo.List(publicOnly, status)
}

func (s *service) Get(id uint) (*Request, error) { return s.repo.FindByID(id) }

func validateText(errs validation.Errors, text string) {
	validation.Required(errs, "request_text", text)
	validation.Length(errs, "request_text", text, 10, 2000)
	lower := strings.ToLower(text)
	for _, word := range inappropriateWords {
		if strings.Contains(lower, word) {
			errs.Add("request_text", "Prayer request contains inappropriate content")
			break
		}
	}
}

func (s *service) Create(req CreateRequest) (*Request, error) {
	if req.Status == "" {
		req.Status = "pending"
	}

	errs := validation.Errors{}
	validateText(errs, req.RequestText)
	validation.OneOf(errs, "status", req.Status, Statuses...)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.UserID != nil {
		exists, err := s.users.Exists(*req.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("user_id", "User does not exist")
			return nil, errs
		}
	}

	r := &Request{
		UserID:      req.UserID,
		RequestText: req.RequestText,
		Status:      req.Status,
	}
	if req.IsPublic != nil {
		r.IsPublic = *req.IsPublic
	}
	if err := s.repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Update(id uint, req UpdateRequest) (*Request, error) {
	r, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.RequestText != nil {
		validateText(errs, *req.RequestText)
	}
	if req.Status != nil {
		validation.OneOf(errs, "status", *req.Status, Statuses...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.RequestText != nil {
		r.RequestText = *req.RequestText
	}
	if req.IsPublic != nil {
		r.IsPublic = *req.IsPublic
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if err := s.repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
