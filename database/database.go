package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/auditlog"
	"github.com/gracechapel/church-management-backend/internal/cms"
	"github.com/gracechapel/church-management-backend/internal/donation"
	"github.com/gracechapel/church-management-backend/internal/event"
	"github.com/gracechapel/church-management-backend/internal/group"
	"github.com/gracechapel/church-management-backend/internal/ministry"
	"github.com/gracechapel/church-management-backend/internal/notification"
	"github.com/gracechapel/church-management-backend/internal/prayer"
	"github.com/gracechapel/church-management-backend/internal/user"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

// Migrate creates/updates the schema for every registered model. Unique
// indexes declared on the models are the hard backstop behind the advisory
// uniqueness checks in the services.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Member{},
		&group.Group{},
		&group.GroupMember{},
		&event.Event{},
		&event.Registration{},
		&ministry.Ministry{},
		&ministry.Leader{},
		&ministry.Member{},
		&donation.Donation{},
		&prayer.Request{},
		&cms.Sermon{},
		&cms.Page{},
		&cms.Announcement{},
		&cms.Media{},
		&cms.ContactMessage{},
		&cms.SiteSetting{},
		&cms.NavigationMenu{},
		&cms.NavigationItem{},
		&notification.InAppNotification{},
		&auditlog.AuditLog{},
	)
}
