package user

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func decorate(u *User) {
	if u.Member != nil {
		u.FullName = u.Member.FirstName + " " + u.Member.LastName
	}
}

func (r *Repository) ListUsers() ([]User, error) {
	var users []User
	if err := r.DB.Preload("Member").Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		decorate(&users[i])
	}
	return users, nil
}

func (r *Repository) FindByID(id uint) (*User, error) {
	var u User
	if err := r.DB.Preload("Member").First(&u, id).Error; err != nil {
		return nil, err
	}
	decorate(&u)
	return &u, nil
}

func (r *Repository) FindByUsername(username string) (*User, error) {
	var u User
	if err := r.DB.Preload("Member").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	decorate(&u)
	return &u, nil
}

func (r *Repository) Create(u *User) error {
	return r.DB.Create(u).Error
}

func (r *Repository) Update(u *User) error {
	return r.DB.Save(u).Error
}

// Delete removes the user and cascades to the owned member profile.
func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&User{}, id).Error
	})
}

func (r *Repository) UsernameTaken(username string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *Repository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ===========================
// Member profile queries

func (r *Repository) ListMembers() ([]Member, error) {
	var members []Member
	err := r.DB.Order("id ASC").Find(&members).Error
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

func (r *Repository) PhoneTaken(phone string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Member{}).Where("phone = ?", phone)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *Repository) HasMemberProfile(userID, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Member{}).Where("user_id = ?", userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
