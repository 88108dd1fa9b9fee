package donation

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) List(userID uint, status string) ([]Donation, error) {
	var donations []Donation
	q := r.DB.Order("created_at DESC")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&donations).Error
	return donations, err
}

func (r *Repository) FindByID(id uint) (*Donation, error) {
	var d Donation
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) FindByOrderID(orderID string) (*Donation, error) {
	var d Donation
	if err := r.DB.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(d *Donation) error {
	return r.DB.Create(d).Error
}

func (r *Repository) Update(d *Donation) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Donation{}, id).Error
}

type PaymentUpdate struct {
	Status    string
	PaymentID *string
	Amount    float64
	DonatedAt *time.Time
}

func (r *Repository) UpdatePaymentDetails(orderID string, upd PaymentUpdate) error {
	fields := map[string]interface{}{
		"status":     upd.Status,
		"payment_id": upd.PaymentID,
		"amount":     upd.Amount,
		"donated_at": upd.DonatedAt,
	}
	return r.DB.Model(&Donation{}).Where("order_id = ?", orderID).Updates(fields).Error
}

// ListSuccessfulBetween feeds the reporting exports.
func (r *Repository) ListSuccessfulBetween(from, to time.Time) ([]Donation, error) {
	var donations []Donation
	err := r.DB.
		Where("status = ? AND created_at BETWEEN ? AND ?", StatusSuccess, from, to).
		Order("created_at ASC").
		Find(&donations).Error
	return donations, err
}
