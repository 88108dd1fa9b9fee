package prayer

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) List(publicOnly bool, status string) ([]Request, error) {
	var requests []Request
	q := r.DB.Order("date_submitted DESC")
	if publicOnly {
		q = q.Where("is_public = ?", true)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *Repository) FindByID(id uint) (*Request, error) {
	var req Request
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(req *Request) error {
	return r.DB.Create(req).Error
}

func (r *Repository) Update(req *Request) error {
	return r.DB.Save(req).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Request{}, id).Error
}
