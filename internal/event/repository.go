package event

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) decorate(e *Event) error {
	count, err := r.CountConfirmed(e.ID, 0)
	if err != nil {
		return err
	}
	e.RegistrationCount = count
	e.IsFull = e.MaxAttendees != nil && count >= *e.MaxAttendees
	return nil
}

func (r *Repository) List() ([]Event, error) {
	var events []Event
	if err := r.DB.Order("start_datetime ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	for i := range events {
		if err := r.decorate(&events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *Repository) ListUpcoming() ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("start_datetime >= ?", time.Now()).
		Order("start_datetime ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	for i := range events {
		if err := r.decorate(&events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *Repository) FindByID(id uint) (*Event, error) {
	var e Event
	if err := r.DB.Preload("Registrations").First(&e, id).Error; err != nil {
		return nil, err
	}
	if err := r.decorate(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) Update(e *Event) error {
	return r.DB.Save(e).Error
}

// Delete removes the event and cascades to its registrations.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, id).Error
	})
}

func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountConfirmed counts confirmed registrations, optionally excluding one
// row so an update does not conflict with itself.
func (r *Repository) CountConfirmed(eventID, excludeID uint) (int, error) {
	var count int64
	q := r.DB.Model(&Registration{}).
		Where("event_id = ? AND status = ?", eventID, StatusConfirmed)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return int(count), err
}

// ===========================
// Registrations

func (r *Repository) ListRegistrations(eventID uint) ([]Registration, error) {
	var regs []Registration
	q := r.DB.Order("id ASC")
	if eventID != 0 {
		q = q.Where("event_id = ?", eventID)
	}
	err := q.Find(&regs).Error
	return regs, err
}

func (r *Repository) FindRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	if err := r.DB.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *Repository) CreateRegistration(reg *Registration) error {
	return r.DB.Create(reg).Error
}

func (r *Repository) UpdateRegistration(reg *Registration) error {
	return r.DB.Save(reg).Error
}

func (r *Repository) DeleteRegistration(id uint) error {
	return r.DB.Delete(&Registration{}, id).Error
}

func (r *Repository) RegistrationTaken(eventID, userID, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Registration{}).Where("event_id = ? AND user_id = ?", eventID, userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
