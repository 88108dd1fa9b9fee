package notification

import (
	"github.com/gracechapel/church-management-backend/internal/validation"
)

type Service interface {
	CreateFromEvent(ev Event) error
	List(userID uint, limit, offset int) ([]InAppNotification, error)
	MarkRead(id uint) (*InAppNotification, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateFromEvent(ev Event) error {
	errs := validation.Errors{}
	validation.Required(errs, "type", ev.Type)
	validation.OneOf(errs, "type", ev.Type,
		TypeRegistrationConfirmed, TypeDonationReceived, TypeAnnouncementPublished)
	validation.Required(errs, "title", ev.Title)
	validation.MaxLength(errs, "title", ev.Title, 255)
	if err := errs.Err(); err != nil {
		return err
	}

	return s.repo.Create(&InAppNotification{
		UserID: ev.UserID,
		Type:   ev.Type,
		Title:  ev.Title,
		Body:   ev.Body,
	})
}

func (s *service) List(userID uint, limit, offset int) ([]InAppNotification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(userID, limit, offset)
}

func (s *service) MarkRead(id uint) (*InAppNotification, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.repo.MarkRead(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
