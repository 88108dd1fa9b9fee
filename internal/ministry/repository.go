package ministry

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) decorate(m *Ministry) error {
	var count int64
	err := r.DB.Model(&Member{}).
		Where("ministry_id = ? AND is_active = ?", m.ID, true).
		Count(&count).Error
	if err != nil {
		return err
	}
	m.MemberCount = int(count)
	return nil
}

func (r *Repository) List(activeOnly bool) ([]Ministry, error) {
	var ministries []Ministry
	q := r.DB.Order("display_order ASC, name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&ministries).Error; err != nil {
		return nil, err
	}
	for i := range ministries {
		if err := r.decorate(&ministries[i]); err != nil {
			return nil, err
		}
	}
	return ministries, nil
}

func (r *Repository) FindByID(id uint) (*Ministry, error) {
	var m Ministry
	err := r.DB.Preload("Leaders").Preload("Members").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	if err := r.decorate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(m *Ministry) error {
	return r.DB.Create(m).Error
}

func (r *Repository) Update(m *Ministry) error {
	return r.DB.Save(m).Error
}

// Delete removes the ministry and cascades to its leaders and members.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ministry_id = ?", id).Delete(&Leader{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ministry_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Ministry{}, id).Error
	})
}

func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&Ministry{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ===========================
// Leaders

func (r *Repository) ListLeaders(ministryID uint) ([]Leader, error) {
	var leaders []Leader
	q := r.DB.Order("id ASC")
	if ministryID != 0 {
		q = q.Where("ministry_id = ?", ministryID)
	}
	err := q.Find(&leaders).Error
	return leaders, err
}

func (r *Repository) FindLeaderByID(id uint) (*Leader, error) {
	var l Leader
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) CreateLeader(l *Leader) error {
	return r.DB.Create(l).Error
}

func (r *Repository) UpdateLeader(l *Leader) error {
	return r.DB.Save(l).Error
}

func (r *Repository) DeleteLeader(id uint) error {
	return r.DB.Delete(&Leader{}, id).Error
}

func (r *Repository) LeadershipTaken(ministryID, userID, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Leader{}).Where("ministry_id = ? AND user_id = ?", ministryID, userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// ===========================
// Members

func (r *Repository) ListRoster(ministryID uint) ([]Member, error) {
	var members []Member
	q := r.DB.Order("id ASC")
	if ministryID != 0 {
		q = q.Where("ministry_id = ?", ministryID)
	}
	err := q.Find(&members).Error
	return members, err
}

func (r *Repository) FindMemberByID(id uint) (*Member, error) {
	var m Member
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CreateMember(m *Member) error {
	return r.DB.Create(m).Error
}

func (r *Repository) UpdateMember(m *Member) error {
	return r.DB.Save(m).Error
}

func (r *Repository) DeleteMember(id uint) error {
	return r.DB.Delete(&Member{}, id).Error
}

func (r *Repository) MembershipTaken(ministryID, userID, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Member{}).Where("ministry_id = ? AND user_id = ?", ministryID, userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
