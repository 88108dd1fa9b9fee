package reports

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

// DonationRows returns successful donations in the window, joined to the
// donor when one is bound.
func (r *Repository) DonationRows(from, to time.Time) ([]DonationReportRow, error) {
	var rows []DonationReportRow
	err := r.DB.
		Table("donations").
		Select(`donations.id,
			COALESCE(members.first_name || ' ' || members.last_name, users.username, 'Anonymous') AS donor_name,
			donations.amount,
			donations.method,
			donations.designation,
			donations.status,
			COALESCE(donations.donated_at, donations.created_at) AS donated_at`).
		Joins("LEFT JOIN users ON users.id = donations.user_id").
		Joins("LEFT JOIN members ON members.user_id = donations.user_id").
		Where("donations.status = ? AND donations.created_at BETWEEN ? AND ?", "success", from, to).
		Order("donations.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// MemberRows returns the member directory joined to account data.
func (r *Repository) MemberRows() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.DB.
		Table("members").
		Select(`members.id,
			members.first_name || ' ' || members.last_name AS full_name,
			users.username,
			users.email,
			members.phone,
			members.address,
			members.join_date`).
		Joins("JOIN users ON users.id = members.user_id").
		Order("members.last_name ASC, members.first_name ASC").
		Scan(&rows).Error
	return rows, err
}
