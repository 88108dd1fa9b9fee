package notification

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(n *InAppNotification) error {
	return r.DB.Create(n).Error
}

// List returns notifications for a user plus broadcast ones (no user bound).
func (r *Repository) List(userID uint, limit, offset int) ([]InAppNotification, error) {
	var items []InAppNotification
	err := r.DB.
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *Repository) FindByID(id uint) (*InAppNotification, error) {
	var n InAppNotification
	if err := r.DB.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) MarkRead(id uint) error {
	return r.DB.Model(&InAppNotification{}).Where("id = ?", id).Update("is_read", true).Error
}
