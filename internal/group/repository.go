package group

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) List() ([]Group, error) {
	var groups []Group
	if err := r.DB.Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	for i := range groups {
		count, err := r.CountMembers(groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].MemberCount = count
	}
	return groups, nil
}

func (r *Repository) FindByID(id uint) (*Group, error) {
	var g Group
	if err := r.DB.Preload("Members").First(&g, id).Error; err != nil {
		return nil, err
	}
	g.MemberCount = len(g.Members)

	if err := r.DB.Where("parent_group_id = ?", g.ID).Find(&g.Subgroups).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) Create(g *Group) error {
	return r.DB.Create(g).Error
}

func (r *Repository) Update(g *Group) error {
	return r.DB.Save(g).Error
}

// Delete removes the group with its memberships and detaches subgroups.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&Group{}).
			Where("parent_group_id = ?", id).
			Update("parent_group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&Group{}, id).Error
	})
}

func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&Group{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CountMembers(groupID uint) (int, error) {
	var count int64
	err := r.DB.Model(&GroupMember{}).Where("group_id = ?", groupID).Count(&count).Error
	return int(count), err
}

// ===========================
// Memberships

func (r *Repository) ListMembers(groupID uint) ([]GroupMember, error) {
	var members []GroupMember
	q := r.DB.Order("id ASC")
	if groupID != 0 {
		q = q.Where("group_id = ?", groupID)
	}
	err := q.Find(&members).Error
	return members, err
}

func (r *Repository) FindMemberByID(id uint) (*GroupMember, error) {
	var m GroupMember
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CreateMember(m *GroupMember) error {
	return r.DB.Create(m).Error
}

func (r *Repository) UpdateMember(m *GroupMember) error {
	return r.DB.Save(m).Error
}

func (r *Repository) DeleteMember(id uint) error {
	return r.DB.Delete(&GroupMember{}, id).Error
}

func (r *Repository) MembershipTaken(groupID, userID, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&GroupMember{}).Where("group_id = ? AND user_id = ?", groupID, userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
