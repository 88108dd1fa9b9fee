package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gracechapel/church-management-backend/internal/notification"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
	"github.com/gracechapel/church-management-backend/utils"
)

var RegistrationStatuses = []string{StatusConfirmed, StatusPending, StatusCancelled}

type Service interface {
	List(upcomingOnly bool) ([]Event, error)
	Get(id uint) (*Event, error)
	Create(req CreateEventRequest) (*Event, error)
	Update(id uint, req UpdateEventRequest) (*Event, error)
	Delete(id uint) error

	ListRegistrations(eventID uint) ([]Registration, error)
	GetRegistration(id uint) (*Registration, error)
	Register(ctx context.Context, req CreateRegistrationRequest) (*Registration, error)
	UpdateRegistration(ctx context.Context, id uint, req UpdateRegistrationRequest) (*Registration, error)
	CancelRegistration(id uint) error
}

type service struct {
	repo  *Repository
	users *user.Repository
}

func NewService(repo *Repository, users *user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) List(upcomingOnly bool) ([]Event, error) {
	if upcomingOnly {
		return s.repo.ListUpcoming()
	}
	return s.repo.List()
}

func (s *service) Get(id uint) (*Event, error) { return s.repo.FindByID(id) }

func (s *service) Create(req CreateEventRequest) (*Event, error) {
	errs := validation.Errors{}
	validation.Required(errs, "title", req.Title)
	validation.Length(errs, "title", req.Title, 1, 255)
	if req.StartDatetime.IsZero() {
		errs.Add("start_datetime", "This field is required")
	} else if req.StartDatetime.Before(time.Now()) {
		errs.Add("start_datetime", "Event start date cannot be in the past")
	}
	if req.MaxAttendees != nil {
		validation.Min(errs, "max_attendees", *req.MaxAttendees, 1)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	// Cross-field: end strictly after start.
	if req.EndDatetime != nil && !req.StartDatetime.Before(*req.EndDatetime) {
		errs.Add("end_datetime", "End time must be after start time")
		return nil, errs
	}

	e := &Event{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      req.Location,
		MaxAttendees:  req.MaxAttendees,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, err
	}
	return s.repo.FindByID(e.ID)
}

func (s *service) Update(id uint, req UpdateEventRequest) (*Event, error) {
	e, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Title != nil {
		validation.Required(errs, "title", *req.Title)
		validation.Length(errs, "title", *req.Title, 1, 255)
	}
	if req.MaxAttendees != nil {
		validation.Min(errs, "max_attendees", *req.MaxAttendees, 1)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	start := e.StartDatetime
	if req.StartDatetime != nil {
		start = *req.StartDatetime
	}
	end := e.EndDatetime
	if req.EndDatetime != nil {
		end = req.EndDatetime
	}
	if end != nil && !start.Before(*end) {
		errs.Add("end_datetime", "End time must be after start time")
		return nil, errs
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.StartDatetime != nil {
		e.StartDatetime = *req.StartDatetime
	}
	if req.EndDatetime != nil {
		e.EndDatetime = req.EndDatetime
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.MaxAttendees != nil {
		e.MaxAttendees = req.MaxAttendees
	}

	if err := s.repo.Update(e); err != nil {
		return nil, err
	}
	return s.repo.FindByID(e.ID)
}

func (s *service) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ===========================
// Registrations

func (s *service) ListRegistrations(eventID uint) ([]Registration, error) {
	return s.repo.ListRegistrations(eventID)
}

func (s *service) GetRegistration(id uint) (*Registration, error) {
	return s.repo.FindRegistrationByID(id)
}

// checkCapacity rejects a registration that would push the confirmed count
// past the event cap. The store-level unique index stays the hard backstop
// for concurrent writers.
func (s *service) checkCapacity(errs validation.Errors, e *Event, excludeID uint) error {
	if e.MaxAttendees == nil {
		return nil
	}
	count, err := s.repo.CountConfirmed(e.ID, excludeID)
	if err != nil {
		return err
	}
	if count >= *e.MaxAttendees {
		errs.Add("event_id", "Event is full")
	}
	return nil
}

func (s *service) Register(ctx context.Context, req CreateRegistrationRequest) (*Registration, error) {
	if req.Status == "" {
		req.Status = StatusConfirmed
	}

	errs := validation.Errors{}
	validation.IntRange(errs, "guests_count", req.GuestsCount, 0, 10)
	validation.OneOf(errs, "status", req.Status, RegistrationStatuses...)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	e, err := s.repo.FindByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errs.Add("event_id", "Event does not exist")
			return nil, errs
		}
		return nil, err
	}
	userExists, err := s.users.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		errs.Add("user_id", "User does not exist")
	}

	taken, err := s.repo.RegistrationTaken(req.EventID, req.UserID, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		errs.Add("user_id", "User is already registered for this event")
	}

	if req.Status == StatusConfirmed {
		if err := s.checkCapacity(errs, e, 0); err != nil {
			return nil, err
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	reg := &Registration{
		EventID:     req.EventID,
		UserID:      req.UserID,
		GuestsCount: req.GuestsCount,
		Status:      req.Status,
	}
	if err := s.repo.CreateRegistration(reg); err != nil {
		return nil, err
	}

	if reg.Status == StatusConfirmed {
		s.publishConfirmation(ctx, e, reg)
	}
	return reg, nil
}

func (s *service) UpdateRegistration(ctx context.Context, id uint, req UpdateRegistrationRequest) (*Registration, error) {
	reg, err := s.repo.FindRegistrationByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.GuestsCount != nil {
		validation.IntRange(errs, "guests_count", *req.GuestsCount, 0, 10)
	}
	if req.Status != nil {
		validation.OneOf(errs, "status", *req.Status, RegistrationStatuses...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	becomingConfirmed := req.Status != nil &&
		*req.Status == StatusConfirmed && reg.Status != StatusConfirmed
	if becomingConfirmed {
		e, err := s.repo.FindByID(reg.EventID)
		if err != nil {
			return nil, err
		}
		if err := s.checkCapacity(errs, e, reg.ID); err != nil {
			return nil, err
		}
		if err := errs.Err(); err != nil {
			return nil, err
		}
	}

	if req.GuestsCount != nil {
		reg.GuestsCount = *req.GuestsCount
	}
	if req.Status != nil {
		reg.Status = *req.Status
	}
	if err := s.repo.UpdateRegistration(reg); err != nil {
		return nil, err
	}

	if becomingConfirmed {
		if e, err := s.repo.FindByID(reg.EventID); err == nil {
			s.publishConfirmation(ctx, e, reg)
		}
	}
	return reg, nil
}

func (s *service) CancelRegistration(id uint) error {
	if _, err := s.repo.FindRegistrationByID(id); err != nil {
		return err
	}
	return s.repo.DeleteRegistration(id)
}

func (s *service) publishConfirmation(ctx context.Context, e *Event, reg *Registration) {
	ev := notification.Event{
		Type:   notification.TypeRegistrationConfirmed,
		UserID: &reg.UserID,
		Title:  fmt.Sprintf("Registration confirmed: %s", e.Title),
		Body:   fmt.Sprintf("You are registered for %s on %s.", e.Title, e.StartDatetime.Format("Jan 2, 2006 15:04")),
	}
	if err := utils.PublishEvent(ctx, ev.Type, ev); err != nil {
		log.Printf("event: could not publish confirmation for registration %d: %v", reg.ID, err)
	}
}
