package cms

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/notification"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
	"github.com/gracechapel/church-management-backend/utils"
)

var PageStatuses = []string{"published", "draft"}

var ContactStatuses = []string{"new", "read", "responded"}

var MenuLocations = []string{"header", "footer", "sidebar"}

var AllowedFileTypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
	"audio/mpeg", "audio/mp3", "audio/wav",
	"video/mp4", "video/mpeg", "video/webm",
	"application/pdf", "application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Service interface {
	ListSermons() ([]Sermon, error)
	GetSermon(id uint) (*Sermon, error)
	CreateSermon(req CreateSermonRequest) (*Sermon, error)
	UpdateSermon(id uint, req UpdateSermonRequest) (*Sermon, error)
	DeleteSermon(id uint) error

	ListPages(status string) ([]Page, error)
	GetPage(id uint) (*Page, error)
	GetPageBySlug(slug string) (*Page, error)
	CreatePage(req CreatePageRequest) (*Page, error)
	UpdatePage(id uint, req UpdatePageRequest) (*Page, error)
	DeletePage(id uint) error

	ListAnnouncements() ([]Announcement, error)
	GetAnnouncement(id uint) (*Announcement, error)
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*Announcement, error)
	UpdateAnnouncement(id uint, req UpdateAnnouncementRequest) (*Announcement, error)
	DeleteAnnouncement(id uint) error

	ListMedia() ([]Media, error)
	GetMedia(id uint) (*Media, error)
	CreateMedia(req CreateMediaRequest) (*Media, error)
	UploadMedia(filename, fileType string, src io.Reader, uploadedBy *uint) (*Media, error)
	DeleteMedia(id uint) error

	ListContactMessages(status string) ([]ContactMessage, error)
	GetContactMessage(id uint) (*ContactMessage, error)
	CreateContactMessage(req CreateContactMessageRequest) (*ContactMessage, error)
	UpdateContactMessage(id uint, req UpdateContactMessageRequest) (*ContactMessage, error)
	DeleteContactMessage(id uint) error

	ListSettings() ([]SiteSetting, error)
	GetSetting(key string) (*SiteSetting, error)
	UpsertSetting(req UpsertSiteSettingRequest) (*SiteSetting, error)
	DeleteSetting(key string) error

	ListMenus() ([]NavigationMenu, error)
	GetMenu(id uint) (*NavigationMenu, error)
	CreateMenu(req CreateMenuRequest) (*NavigationMenu, error)
	UpdateMenu(id uint, req UpdateMenuRequest) (*NavigationMenu, error)
	DeleteMenu(id uint) error

	CreateNavigationItem(req CreateNavigationItemRequest) (*NavigationItem, error)
	UpdateNavigationItem(id uint, req UpdateNavigationItemRequest) (*NavigationItem, error)
	DeleteNavigationItem(id uint) error
}

type service struct {
	repo  *Repository
	users *user.Repository
	cfg   *config.Config
}

func NewService(repo *Repository, users *user.Repository, cfg *config.Config) Service {
	return &service{repo: repo, users: users, cfg: cfg}
}

// ===========================
// Sermons

func (s *service) ListSermons() ([]Sermon, error)     { return s.repo.ListSermons() }
func (s *service) GetSermon(id uint) (*Sermon, error) { return s.repo.FindSermonByID(id) }

func validateSermonDate(errs validation.Errors, value string) *time.Time {
	if value == "" {
		errs.Add("date", "This field is required")
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add("date", "Invalid date format. Use YYYY-MM-DD")
		return nil
	}
	// Scheduled sermons may sit up to 30 days ahead.
	if t.After(time.Now().AddDate(0, 0, 30)) {
		errs.Add("date", "Sermon date cannot be more than 30 days in the future")
	}
	return &t
}

func validateSermonFields(errs validation.Errors, title, speaker, scripture, audioURL, videoURL string) {
	validation.Required(errs, "title", title)
	validation.Length(errs, "title", title, 1, 255)
	validation.MaxLength(errs, "speaker_name", speaker, 100)
	validation.MaxLength(errs, "scripture_reference", scripture, 255)
	validation.ContainsDigit(errs, "scripture_reference", scripture,
		"Scripture reference should include chapter/verse numbers")
	validation.HTTPURL(errs, "audio_url", audioURL)
	validation.HTTPURL(errs, "video_url", videoURL)
}

func (s *service) CreateSermon(req CreateSermonRequest) (*Sermon, error) {
	errs := validation.Errors{}
	validateSermonFields(errs, req.Title, req.SpeakerName, req.ScriptureReference, req.AudioURL, req.VideoURL)
	date := validateSermonDate(errs, req.Date)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	sermon := &Sermon{
		Title:              req.Title,
		SpeakerName:        req.SpeakerName,
		Date:               *date,
		ScriptureReference: req.ScriptureReference,
		Notes:              req.Notes,
		AudioURL:           req.AudioURL,
		VideoURL:           req.VideoURL,
	}
	if err := s.repo.CreateSermon(sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

func (s *service) UpdateSermon(id uint, req UpdateSermonRequest) (*Sermon, error) {
	sermon, err := s.repo.FindSermonByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Title != nil {
		validation.Required(errs, "title", *req.Title)
		validation.Length(errs, "title", *req.Title, 1, 255)
	}
	if req.SpeakerName != nil {
		validation.MaxLength(errs, "speaker_name", *req.SpeakerName, 100)
	}
	if req.ScriptureReference != nil {
		validation.MaxLength(errs, "scripture_reference", *req.ScriptureReference, 255)
		validation.ContainsDigit(errs, "scripture_reference", *req.ScriptureReference,
			"Scripture reference should include chapter/verse numbers")
	}
	if req.AudioURL != nil {
		validation.HTTPURL(errs, "audio_url", *req.AudioURL)
	}
	if req.VideoURL != nil {
		validation.HTTPURL(errs, "video_url", *req.VideoURL)
	}
	var date *time.Time
	if req.Date != nil {
		date = validateSermonDate(errs, *req.Date)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Title != nil {
		sermon.Title = *req.Title
	}
	if req.SpeakerName != nil {
		sermon.SpeakerName = *req.SpeakerName
	}
	if date != nil {
		sermon.Date = *date
	}
	if req.ScriptureReference != nil {
		sermon.ScriptureReference = *req.ScriptureReference
	}
	if req.Notes != nil {
		sermon.Notes = *req.Notes
	}
	if req.AudioURL != nil {
		sermon.AudioURL = *req.AudioURL
	}
	if req.VideoURL != nil {
		sermon.VideoURL = *req.VideoURL
	}

	if err := s.repo.UpdateSermon(sermon); err != nil {
		return nil, err
	}
	return sermon, nil
}

func (s *service) DeleteSermon(id uint) error {
	if _, err := s.repo.FindSermonByID(id); err != nil {
		return err
	}
	return s.repo.DeleteSermon(id)
}

// ===========================
// Pages

func (s *service) ListPages(status string) ([]Page, error) { return s.repo.ListPages(status) }
func (s *service) GetPage(id uint) (*Page, error)          { return s.repo.FindPageByID(id) }
func (s *service) GetPageBySlug(slug string) (*Page, error) {
	return s.repo.FindPageBySlug(slug)
}

func (s *service) checkSlug(errs validation.Errors, slug string, excludeID uint) error {
	taken, err := s.repo.SlugTaken(slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		errs.Add("slug", "Slug already exists")
	}
	return nil
}

func (s *service) CreatePage(req CreatePageRequest) (*Page, error) {
	if req.Status == "" {
		req.Status = "draft"
	}

	errs := validation.Errors{}
	validation.Required(errs, "title", req.Title)
	validation.Length(errs, "title", req.Title, 1, 255)
	validation.Required(errs, "slug", req.Slug)
	validation.Length(errs, "slug", req.Slug, 1, 255)
	validation.Slug(errs, "slug", req.Slug)
	validation.OneOf(errs, "status", req.Status, PageStatuses...)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.checkSlug(errs, req.Slug, 0); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	p := &Page{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  req.Status,
	}
	if err := s.repo.CreatePage(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdatePage(id uint, req UpdatePageRequest) (*Page, error) {
	p, err := s.repo.FindPageByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Title != nil {
		validation.Required(errs, "title", *req.Title)
		validation.Length(errs, "title", *req.Title, 1, 255)
	}
	if req.Slug != nil {
		validation.Required(errs, "slug", *req.Slug)
		validation.Length(errs, "slug", *req.Slug, 1, 255)
		validation.Slug(errs, "slug", *req.Slug)
	}
	if req.Status != nil {
		validation.OneOf(errs, "status", *req.Status, PageStatuses...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Slug != nil {
		if err := s.checkSlug(errs, *req.Slug, p.ID); err != nil {
			return nil, err
		}
		if err := errs.Err(); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if err := s.repo.UpdatePage(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeletePage(id uint) error {
	if _, err := s.repo.FindPageByID(id); err != nil {
		return err
	}
	return s.repo.DeletePage(id)
}

// ===========================
// Announcements

func (s *service) ListAnnouncements() ([]Announcement, error) {
	return s.repo.ListAnnouncements()
}

func (s *service) GetAnnouncement(id uint) (*Announcement, error) {
	return s.repo.FindAnnouncementByID(id)
}

func (s *service) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*Announcement, error) {
	errs := validation.Errors{}
	validation.Required(errs, "title", req.Title)
	validation.Length(errs, "title", req.Title, 1, 255)
	validation.Required(errs, "content", req.Content)
	validation.Length(errs, "content", req.Content, 1, 5000)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	publishDate := time.Now()
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}
	if req.ExpireDate != nil && !publishDate.Before(*req.ExpireDate) {
		errs.Add("expire_date", "Expiration date must be after publish date")
		return nil, errs
	}

	if req.AuthorID != nil {
		exists, err := s.users.Exists(*req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("author_id", "User does not exist")
			return nil, errs
		}
	}

	a := &Announcement{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		PublishDate: publishDate,
		ExpireDate:  req.ExpireDate,
	}
	if err := s.repo.CreateAnnouncement(a); err != nil {
		return nil, err
	}

	if !a.PublishDate.After(time.Now()) {
		ev := notification.Event{
			Type:  notification.TypeAnnouncementPublished,
			Title: a.Title,
			Body:  a.Content,
		}
		if err := utils.PublishEvent(ctx, ev.Type, ev); err != nil {
			log.Printf("cms: could not publish announcement %d: %v", a.ID, err)
		}
	}
	return a, nil
}

func (s *service) UpdateAnnouncement(id uint, req UpdateAnnouncementRequest) (*Announcement, error) {
	a, err := s.repo.FindAnnouncementByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Title != nil {
		validation.Required(errs, "title", *req.Title)
		validation.Length(errs, "title", *req.Title, 1, 255)
	}
	if req.Content != nil {
		validation.Required(errs, "content", *req.Content)
		validation.Length(errs, "content", *req.Content, 1, 5000)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	publishDate := a.PublishDate
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}
	expireDate := a.ExpireDate
	if req.ExpireDate != nil {
		expireDate = req.ExpireDate
	}
	if expireDate != nil && !publishDate.Before(*expireDate) {
		errs.Add("expire_date", "Expiration date must be after publish date")
		return nil, errs
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	a.PublishDate = publishDate
	a.ExpireDate = expireDate

	if err := s.repo.UpdateAnnouncement(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAnnouncement(id uint) error {
	if _, err := s.repo.FindAnnouncementByID(id); err != nil {
		return err
	}
	return s.repo.DeleteAnnouncement(id)
}

// ===========================
// Media

func (s *service) ListMedia() ([]Media, error)      { return s.repo.ListMedia() }
func (s *service) GetMedia(id uint) (*Media, error) { return s.repo.FindMediaByID(id) }

func validateMediaFields(errs validation.Errors, filename, filePath, fileType string) {
	validation.Required(errs, "filename", filename)
	validation.Length(errs, "filename", filename, 1, 255)
	validation.SafeFilename(errs, "filename", filename)
	validation.Required(errs, "file_path", filePath)
	validation.Length(errs, "file_path", filePath, 1, 500)
	validation.MaxLength(errs, "file_type", fileType, 50)
	if fileType != "" {
		allowed := false
		for _, t := range AllowedFileTypes {
			if fileType == t {
				allowed = true
				break
			}
		}
		if !allowed {
			errs.Add("file_type", "File type not allowed")
		}
	}
}

func (s *service) CreateMedia(req CreateMediaRequest) (*Media, error) {
	errs := validation.Errors{}
	validateMediaFields(errs, req.Filename, req.FilePath, req.FileType)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.UploadedBy != nil {
		exists, err := s.users.Exists(*req.UploadedBy)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("uploaded_by", "User does not exist")
			return nil, errs
		}
	}

	m := &Media{
		Filename:   req.Filename,
		FilePath:   req.FilePath,
		FileType:   req.FileType,
		UploadedBy: req.UploadedBy,
	}
	if err := s.repo.CreateMedia(m); err != nil {
		return nil, err
	}
	return m, nil
}

// UploadMedia stores the file under the upload directory with a generated
// name, then records it. The original filename survives only as metadata.
func (s *service) UploadMedia(filename, fileType string, src io.Reader, uploadedBy *uint) (*Media, error) {
	errs := validation.Errors{}
	validation.Required(errs, "filename", filename)
	validation.Length(errs, "filename", filename, 1, 255)
	validation.SafeFilename(errs, "filename", filename)
	if fileType != "" {
		allowed := false
		for _, t := range AllowedFileTypes {
			if fileType == t {
				allowed = true
				break
			}
		}
		if !allowed {
			errs.Add("file_type", "File type not allowed")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}

	stored := uuid.New().String() + filepath.Ext(filename)
	dstPath := filepath.Join(s.cfg.UploadDir, stored)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("could not store upload: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("could not store upload: %w", err)
	}

	return s.CreateMedia(CreateMediaRequest{
		Filename:   filename,
		FilePath:   dstPath,
		FileType:   fileType,
		UploadedBy: uploadedBy,
	})
}

func (s *service) DeleteMedia(id uint) error {
	m, err := s.repo.FindMediaByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteMedia(id); err != nil {
		return err
	}
	if err := os.Remove(m.FilePath); err != nil && !os.IsNotExist(err) {
		log.Printf("cms: could not remove stored file %s: %v", m.FilePath, err)
	}
	return nil
}

// ===========================
// Contact messages

func (s *service) ListContactMessages(status string) ([]ContactMessage, error) {
	return s.repo.ListContactMessages(status)
}

func (s *service) GetContactMessage(id uint) (*ContactMessage, error) {
	return s.repo.FindContactMessageByID(id)
}

func (s *service) CreateContactMessage(req CreateContactMessageRequest) (*ContactMessage, error) {
	errs := validation.Errors{}
	validation.Required(errs, "name", req.Name)
	validation.Length(errs, "name", req.Name, 1, 100)
	validation.Required(errs, "email", req.Email)
	validation.Email(errs, "email", req.Email)
	validation.MaxLength(errs, "subject", req.Subject, 255)
	validation.Required(errs, "message", req.Message)
	validation.Length(errs, "message", req.Message, 10, 2000)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	m := &ContactMessage{
		UserID:  req.UserID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "new",
	}
	if err := s.repo.CreateContactMessage(m); err != nil {
		return nil, err
	}

	if s.cfg.StaffEmail != "" {
		subject := fmt.Sprintf("New contact message from %s", m.Name)
		body := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", m.Name, m.Email, m.Subject, m.Message)
		if err := utils.SendEmail(s.cfg, s.cfg.StaffEmail, subject, body); err != nil {
			log.Printf("cms: could not notify staff about contact message %d: %v", m.ID, err)
		}
	}
	return m, nil
}

func (s *service) UpdateContactMessage(id uint, req UpdateContactMessageRequest) (*ContactMessage, error) {
	m, err := s.repo.FindContactMessageByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Status != nil {
		validation.OneOf(errs, "status", *req.Status, ContactStatuses...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Status != nil {
		m.Status = *req.Status
	}
	if err := s.repo.UpdateContactMessage(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeleteContactMessage(id uint) error {
	if _, err := s.repo.FindContactMessageByID(id); err != nil {
		return err
	}
	return s.repo.DeleteContactMessage(id)
}

// ===========================
// Site settings

func (s *service) ListSettings() ([]SiteSetting, error) { return s.repo.ListSettings() }

func (s *service) GetSetting(key string) (*SiteSetting, error) {
	return s.repo.FindSettingByKey(key)
}

func (s *service) UpsertSetting(req UpsertSiteSettingRequest) (*SiteSetting, error) {
	errs := validation.Errors{}
	validation.Required(errs, "key", req.Key)
	validation.Length(errs, "key", req.Key, 1, 100)
	validation.MaxLength(errs, "description", req.Description, 255)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindSettingByKey(req.Key)
	if err == nil {
		existing.Value = req.Value
		if req.Description != "" {
			existing.Description = req.Description
		}
		if err := s.repo.SaveSetting(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	setting := &SiteSetting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	}
	if err := s.repo.CreateSetting(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *service) DeleteSetting(key string) error {
	if _, err := s.repo.FindSettingByKey(key); err != nil {
		return err
	}
	return s.repo.DeleteSetting(key)
}

// ===========================
// Navigation

func (s *service) ListMenus() ([]NavigationMenu, error) { return s.repo.ListMenus() }

func (s *service) GetMenu(id uint) (*NavigationMenu, error) { return s.repo.FindMenuByID(id) }

func (s *service) CreateMenu(req CreateMenuRequest) (*NavigationMenu, error) {
	errs := validation.Errors{}
	validation.Required(errs, "name", req.Name)
	validation.Length(errs, "name", req.Name, 1, 100)
	validation.OneOf(errs, "location", req.Location, MenuLocations...)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	m := &NavigationMenu{Name: req.Name, Location: req.Location}
	if err := s.repo.CreateMenu(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateMenu(id uint, req UpdateMenuRequest) (*NavigationMenu, error) {
	m, err := s.repo.FindMenuByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Name != nil {
		validation.Required(errs, "name", *req.Name)
		validation.Length(errs, "name", *req.Name, 1, 100)
	}
	if req.Location != nil {
		validation.OneOf(errs, "location", *req.Location, MenuLocations...)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Location != nil {
		m.Location = *req.Location
	}
	m.Items = nil
	if err := s.repo.UpdateMenu(m); err != nil {
		return nil, err
	}
	return s.repo.FindMenuByID(m.ID)
}

func (s *service) DeleteMenu(id uint) error {
	if _, err := s.repo.FindMenuByID(id); err != nil {
		return err
	}
	return s.repo.DeleteMenu(id)
}

// checkItemParent mirrors the group tree guard: the parent must exist in the
// same menu, an item cannot be its own parent, and the direct
// parent-of-parent must not point back. The guard is one level deep.
func (s *service) checkItemParent(errs validation.Errors, menuID, parentID, selfID uint) error {
	if selfID != 0 && parentID == selfID {
		errs.Add("parent_id", "Item cannot be its own parent")
		return nil
	}

	parent, err := s.repo.FindItemByID(parentID)
	if err != nil {
		errs.Add("parent_id", "Parent item does not exist")
		return nil
	}
	if parent.MenuID != menuID {
		errs.Add("parent_id", "Parent item belongs to a different menu")
		return nil
	}
	if selfID != 0 && parent.ParentID != nil && *parent.ParentID == selfID {
		errs.Add("parent_id", "Circular parent-child relationship detected")
	}
	return nil
}

func validateItemFields(errs validation.Errors, label, url string, order int) {
	validation.Required(errs, "label", label)
	validation.Length(errs, "label", label, 1, 100)
	validation.MaxLength(errs, "url", url, 255)
	validation.PathOrHTTPURL(errs, "url", url)
	validation.Min(errs, "order", order, 0)
}

func (s *service) CreateNavigationItem(req CreateNavigationItemRequest) (*NavigationItem, error) {
	errs := validation.Errors{}
	validateItemFields(errs, req.Label, req.URL, req.Order)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	menuExists, err := s.repo.MenuExists(req.MenuID)
	if err != nil {
		return nil, err
	}
	if !menuExists {
		errs.Add("menu_id", "Menu does not exist")
	}
	if req.ParentID != nil && menuExists {
		if err := s.checkItemParent(errs, req.MenuID, *req.ParentID, 0); err != nil {
			return nil, err
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	it := &NavigationItem{
		MenuID:   req.MenuID,
		ParentID: req.ParentID,
		Label:    req.Label,
		URL:      req.URL,
		Order:    req.Order,
	}
	if err := s.repo.CreateItem(it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) UpdateNavigationItem(id uint, req UpdateNavigationItemRequest) (*NavigationItem, error) {
	it, err := s.repo.FindItemByID(id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if req.Label != nil {
		validation.Required(errs, "label", *req.Label)
		validation.Length(errs, "label", *req.Label, 1, 100)
	}
	if req.URL != nil {
		validation.MaxLength(errs, "url", *req.URL, 255)
		validation.PathOrHTTPURL(errs, "url", *req.URL)
	}
	if req.Order != nil {
		validation.Min(errs, "order", *req.Order, 0)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.checkItemParent(errs, it.MenuID, *req.ParentID, it.ID); err != nil {
			return nil, err
		}
		if err := errs.Err(); err != nil {
			return nil, err
		}
	}

	if req.ClearParent {
		it.ParentID = nil
	} else if req.ParentID != nil {
		it.ParentID = req.ParentID
	}
	if req.Label != nil {
		it.Label = *req.Label
	}
	if req.URL != nil {
		it.URL = *req.URL
	}
	if req.Order != nil {
		it.Order = *req.Order
	}

	if err := s.repo.UpdateItem(it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) DeleteNavigationItem(id uint) error {
	if _, err := s.repo.FindItemByID(id); err != nil {
		return err
	}
	return s.repo.DeleteItem(id)
}
