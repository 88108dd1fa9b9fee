package cms

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// Sermons

func (r *Repository) ListSermons() ([]Sermon, error) {
	var sermons []Sermon
	err := r.DB.Order("date DESC").Find(&sermons).Error
	return sermons, err
}

func (r *Repository) FindSermonByID(id uint) (*Sermon, error) {
	var s Sermon
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) CreateSermon(s *Sermon) error { return r.DB.Create(s).Error }
func (r *Repository) UpdateSermon(s *Sermon) error { return r.DB.Save(s).Error }
func (r *Repository) DeleteSermon(id uint) error   { return r.DB.Delete(&Sermon{}, id).Error }

// ===========================
// Pages

func (r *Repository) ListPages(status string) ([]Page, error) {
	var pages []Page
	q := r.DB.Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&pages).Error
	return pages, err
}

func (r *Repository) FindPageByID(id uint) (*Page, error) {
	var p Page
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindPageBySlug(slug string) (*Page, error) {
	var p Page
	if err := r.DB.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&Page{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreatePage(p *Page) error { return r.DB.Create(p).Error }
func (r *Repository) UpdatePage(p *Page) error { return r.DB.Save(p).Error }
func (r *Repository) DeletePage(id uint) error { return r.DB.Delete(&Page{}, id).Error }

// ===========================
// Announcements

func (r *Repository) ListAnnouncements() ([]Announcement, error) {
	var items []Announcement
	err := r.DB.Order("publish_date DESC").Find(&items).Error
	return items, err
}

func (r *Repository) FindAnnouncementByID(id uint) (*Announcement, error) {
	var a Announcement
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) CreateAnnouncement(a *Announcement) error { return r.DB.Create(a).Error }
func (r *Repository) UpdateAnnouncement(a *Announcement) error { return r.DB.Save(a).Error }
func (r *Repository) DeleteAnnouncement(id uint) error {
	return r.DB.Delete(&Announcement{}, id).Error
}

// ===========================
// Media

func (r *Repository) ListMedia() ([]Media, error) {
	var items []Media
	err := r.DB.Order("upload_date DESC").Find(&items).Error
	return items, err
}

func (r *Repository) FindMediaByID(id uint) (*Media, error) {
	var m Media
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CreateMedia(m *Media) error { return r.DB.Create(m).Error }
func (r *Repository) DeleteMedia(id uint) error  { return r.DB.Delete(&Media{}, id).Error }

// ===========================
// Contact messages

func (r *Repository) ListContactMessages(status string) ([]ContactMessage, error) {
	var items []ContactMessage
	q := r.DB.Order("date DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *Repository) FindContactMessageByID(id uint) (*ContactMessage, error) {
	var m ContactMessage
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CreateContactMessage(m *ContactMessage) error { return r.DB.Create(m).Error }
func (r *Repository) UpdateContactMessage(m *ContactMessage) error { return r.DB.Save(m).Error }
func (r *Repository) DeleteContactMessage(id uint) error {
	return r.DB.Delete(&ContactMessage{}, id).Error
}

// ===========================
// Site settings

func (r *Repository) ListSettings() ([]SiteSetting, error) {
	var items []SiteSetting
	err := r.DB.Order("key ASC").Find(&items).Error
	return items, err
}

func (r *Repository) FindSettingByKey(key string) (*SiteSetting, error) {
	var s SiteSetting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SaveSetting(s *SiteSetting) error { return r.DB.Save(s).Error }
func (r *Repository) CreateSetting(s *SiteSetting) error {
	return r.DB.Create(s).Error
}
func (r *Repository) DeleteSetting(key string) error {
	return r.DB.Where("key = ?", key).Delete(&SiteSetting{}).Error
}

// ===========================
// Navigation

func (r *Repository) ListMenus() ([]NavigationMenu, error) {
	var menus []NavigationMenu
	if err := r.DB.Order("id ASC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// FindMenuByID loads a menu with its items arranged as a parent/child tree.
func (r *Repository) FindMenuByID(id uint) (*NavigationMenu, error) {
	var m NavigationMenu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}

	var items []NavigationItem
	err := r.DB.
		Where("menu_id = ?", id).
		Order("item_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	byParent := map[uint][]NavigationItem{}
	var roots []NavigationItem
	for _, it := range items {
		if it.ParentID == nil {
			roots = append(roots, it)
		} else {
			byParent[*it.ParentID] = append(byParent[*it.ParentID], it)
		}
	}
	for i := range roots {
		roots[i].Children = byParent[roots[i].ID]
	}
	m.Items = roots
	return &m, nil
}

func (r *Repository) MenuExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&NavigationMenu{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateMenu(m *NavigationMenu) error { return r.DB.Create(m).Error }
func (r *Repository) UpdateMenu(m *NavigationMenu) error { return r.DB.Save(m).Error }

// DeleteMenu removes the menu and cascades to its items.
func (r *Repository) DeleteMenu(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&NavigationItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&NavigationMenu{}, id).Error
	})
}

func (r *Repository) FindItemByID(id uint) (*NavigationItem, error) {
	var it NavigationItem
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repository) CreateItem(it *NavigationItem) error { return r.DB.Create(it).Error }
func (r *Repository) UpdateItem(it *NavigationItem) error { return r.DB.Save(it).Error }

// DeleteItem detaches any children before removing the item.
func (r *Repository) DeleteItem(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&NavigationItem{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&NavigationItem{}, id).Error
	})
}
