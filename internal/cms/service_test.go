package cms

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/internal/validation"
)

func setupService(t *testing.T) (Service, *user.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &user.Member{},
		&Sermon{}, &Page{}, &Announcement{}, &Media{},
		&ContactMessage{}, &SiteSetting{}, &NavigationMenu{}, &NavigationItem{},
	))

	cfg := &config.Config{UploadDir: t.TempDir()}
	users := user.NewRepository(db)
	return NewService(NewRepository(db), users, cfg), users
}

// ===========================
// Sermons

func TestCreateSermonValidation(t *testing.T) {
	svc, _ := setupService(t)

	var verrs validation.Errors

	_, err := svc.CreateSermon(CreateSermonRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["title"], "This field is required")
	assert.Contains(t, verrs["date"], "This field is required")

	_, err = svc.CreateSermon(CreateSermonRequest{
		Title:              "Faith and Works",
		Date:               time.Now().AddDate(0, 0, 45).Format("2006-01-02"),
		ScriptureReference: "James",
		AudioURL:           "ftp://example.com/a.mp3",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["date"], "Sermon date cannot be more than 30 days in the future")
	assert.Contains(t, verrs["scripture_reference"], "Scripture reference should include chapter/verse numbers")
	assert.Len(t, verrs["audio_url"], 1)
}

func TestCreateSermon(t *testing.T) {
	svc, _ := setupService(t)

	sermon, err := svc.CreateSermon(CreateSermonRequest{
		Title:              "Faith and Works",
		SpeakerName:        "Pastor John",
		Date:               "2026-08-16",
		ScriptureReference: "James 2:14-26",
		AudioURL:           "https://cdn.example.com/sermons/faith.mp3",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-16", sermon.Date.Format("2006-01-02"))

	got, err := svc.GetSermon(sermon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pastor John", got.SpeakerName)
}

// ===========================
// Pages

func TestCreatePageSlugRules(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreatePage(CreatePageRequest{Title: "About Us", Slug: "about-us"})
	require.NoError(t, err)

	var verrs validation.Errors

	_, err = svc.CreatePage(CreatePageRequest{Title: "Bad Slug", Slug: "About Us!"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["slug"], "Slug must contain only lowercase letters, numbers, and hyphens")

	_, err = svc.CreatePage(CreatePageRequest{Title: "Duplicate", Slug: "about-us"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["slug"], "Slug already exists")

	_, err = svc.CreatePage(CreatePageRequest{Title: "Bad Status", Slug: "bad-status", Status: "archived"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["status"], "Must be one of: published, draft")
}

func TestUpdatePageSlugSelfExempt(t *testing.T) {
	svc, _ := setupService(t)

	p1, err := svc.CreatePage(CreatePageRequest{Title: "About", Slug: "about"})
	require.NoError(t, err)
	_, err = svc.CreatePage(CreatePageRequest{Title: "Contact", Slug: "contact"})
	require.NoError(t, err)

	same := "about"
	_, err = svc.UpdatePage(p1.ID, UpdatePageRequest{Slug: &same})
	assert.NoError(t, err)

	taken := "contact"
	_, err = svc.UpdatePage(p1.ID, UpdatePageRequest{Slug: &taken})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["slug"], "Slug already exists")
}

func TestGetPageBySlug(t *testing.T) {
	svc, _ := setupService(t)

	created, err := svc.CreatePage(CreatePageRequest{Title: "About", Slug: "about", Status: "published"})
	require.NoError(t, err)

	got, err := svc.GetPageBySlug("about")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetPageBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// ===========================
// Announcements

func TestCreateAnnouncementDates(t *testing.T) {
	svc, users := setupService(t)
	ctx := context.Background()

	publish := time.Now().Add(24 * time.Hour)
	expire := publish.Add(-time.Hour)
	_, err := svc.CreateAnnouncement(ctx, CreateAnnouncementRequest{
		Title:       "Picnic",
		Content:     "Church picnic this Saturday.",
		PublishDate: &publish,
		ExpireDate:  &expire,
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["expire_date"], "Expiration date must be after publish date")

	missing := uint(999)
	_, err = svc.CreateAnnouncement(ctx, CreateAnnouncementRequest{
		Title:    "Picnic",
		Content:  "Church picnic this Saturday.",
		AuthorID: &missing,
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["author_id"], "User does not exist")

	author := &user.User{Username: "pastor", Email: "pastor@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(author))
	a, err := svc.CreateAnnouncement(ctx, CreateAnnouncementRequest{
		Title:    "Picnic",
		Content:  "Church picnic this Saturday.",
		AuthorID: &author.ID,
	})
	require.NoError(t, err)
	assert.False(t, a.PublishDate.IsZero())
}

// ===========================
// Media

func TestCreateMediaValidation(t *testing.T) {
	svc, _ := setupService(t)

	var verrs validation.Errors

	_, err := svc.CreateMedia(CreateMediaRequest{
		Filename: "../../etc/passwd",
		FilePath: "/uploads/x",
		FileType: "application/x-msdownload",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["filename"], "Filename contains invalid characters")
	assert.Contains(t, verrs["file_type"], "File type not allowed")

	_, err = svc.CreateMedia(CreateMediaRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["filename"], "This field is required")
	assert.Contains(t, verrs["file_path"], "This field is required")
}

func TestUploadAndDeleteMedia(t *testing.T) {
	svc, users := setupService(t)

	uploader := &user.User{Username: "admin", Email: "admin@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(uploader))

	m, err := svc.UploadMedia("bulletin.pdf", "application/pdf",
		strings.NewReader("%PDF-1.4 test"), &uploader.ID)
	require.NoError(t, err)
	assert.Equal(t, "bulletin.pdf", m.Filename)
	assert.Equal(t, ".pdf", filepath.Ext(m.FilePath))

	_, err = os.Stat(m.FilePath)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMedia(m.ID))
	_, err = os.Stat(m.FilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadMediaRejectsBadType(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.UploadMedia("script.exe", "application/x-msdownload", strings.NewReader("MZ"), nil)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["file_type"], "File type not allowed")
}

// ===========================
// Contact messages

func TestCreateContactMessage(t *testing.T) {
	svc, _ := setupService(t)

	var verrs validation.Errors
	_, err := svc.CreateContactMessage(CreateContactMessageRequest{
		Name:    "Visitor",
		Email:   "not-an-email",
		Message: "short",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "Not a valid email address")
	assert.Contains(t, verrs["message"], "Length must be between 10 and 2000")

	m, err := svc.CreateContactMessage(CreateContactMessageRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Service times",
		Message: "What time is the Sunday service?",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", m.Status)

	read := "read"
	updated, err := svc.UpdateContactMessage(m.ID, UpdateContactMessageRequest{Status: &read})
	require.NoError(t, err)
	assert.Equal(t, "read", updated.Status)
}

// ===========================
// Site settings

func TestUpsertSetting(t *testing.T) {
	svc, _ := setupService(t)

	created, err := svc.UpsertSetting(UpsertSiteSettingRequest{
		Key: "site_title", Value: "Grace Chapel", Description: "Shown in the header",
	})
	require.NoError(t, err)

	updated, err := svc.UpsertSetting(UpsertSiteSettingRequest{Key: "site_title", Value: "Grace Chapel North"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Grace Chapel North", updated.Value)
	assert.Equal(t, "Shown in the header", updated.Description)

	require.NoError(t, svc.DeleteSetting("site_title"))
	_, err = svc.GetSetting("site_title")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// ===========================
// Navigation

func TestNavigationItemParentRules(t *testing.T) {
	svc, _ := setupService(t)

	menu, err := svc.CreateMenu(CreateMenuRequest{Name: "Main", Location: "header"})
	require.NoError(t, err)
	other, err := svc.CreateMenu(CreateMenuRequest{Name: "Footer", Location: "footer"})
	require.NoError(t, err)

	parent, err := svc.CreateNavigationItem(CreateNavigationItemRequest{MenuID: menu.ID, Label: "About", URL: "/about"})
	require.NoError(t, err)
	child, err := svc.CreateNavigationItem(CreateNavigationItemRequest{
		MenuID: menu.ID, ParentID: &parent.ID, Label: "Staff", URL: "/about/staff",
	})
	require.NoError(t, err)
	foreign, err := svc.CreateNavigationItem(CreateNavigationItemRequest{MenuID: other.ID, Label: "Privacy", URL: "/privacy"})
	require.NoError(t, err)

	var verrs validation.Errors

	_, err = svc.UpdateNavigationItem(parent.ID, UpdateNavigationItemRequest{ParentID: &parent.ID})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_id"], "Item cannot be its own parent")

	_, err = svc.UpdateNavigationItem(parent.ID, UpdateNavigationItemRequest{ParentID: &child.ID})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_id"], "Circular parent-child relationship detected")

	_, err = svc.UpdateNavigationItem(child.ID, UpdateNavigationItemRequest{ParentID: &foreign.ID})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_id"], "Parent item belongs to a different menu")

	missing := uint(999)
	_, err = svc.CreateNavigationItem(CreateNavigationItemRequest{
		MenuID: menu.ID, ParentID: &missing, Label: "Orphan", URL: "/orphan",
	})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["parent_id"], "Parent item does not exist")
}

func TestNavigationMenuTree(t *testing.T) {
	svc, _ := setupService(t)

	menu, err := svc.CreateMenu(CreateMenuRequest{Name: "Main", Location: "header"})
	require.NoError(t, err)

	parent, err := svc.CreateNavigationItem(CreateNavigationItemRequest{MenuID: menu.ID, Label: "About", URL: "/about", Order: 1})
	require.NoError(t, err)
	_, err = svc.CreateNavigationItem(CreateNavigationItemRequest{
		MenuID: menu.ID, ParentID: &parent.ID, Label: "Staff", URL: "/about/staff", Order: 1,
	})
	require.NoError(t, err)

	got, err := svc.GetMenu(menu.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "About", got.Items[0].Label)
	require.Len(t, got.Items[0].Children, 1)
	assert.Equal(t, "Staff", got.Items[0].Children[0].Label)
}

func TestDeleteNavigationItemDetachesChildren(t *testing.T) {
	svc, _ := setupService(t)

	menu, err := svc.CreateMenu(CreateMenuRequest{Name: "Main", Location: "header"})
	require.NoError(t, err)
	parent, err := svc.CreateNavigationItem(CreateNavigationItemRequest{MenuID: menu.ID, Label: "About", URL: "/about"})
	require.NoError(t, err)
	child, err := svc.CreateNavigationItem(CreateNavigationItemRequest{
		MenuID: menu.ID, ParentID: &parent.ID, Label: "Staff", URL: "/about/staff",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNavigationItem(parent.ID))

	got, err := svc.GetMenu(menu.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, child.ID, got.Items[0].ID)
	assert.Nil(t, got.Items[0].ParentID)
}
