package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/auditlog"
	"github.com/gracechapel/church-management-backend/internal/auth"
	"github.com/gracechapel/church-management-backend/internal/cms"
	"github.com/gracechapel/church-management-backend/internal/donation"
	"github.com/gracechapel/church-management-backend/internal/event"
	"github.com/gracechapel/church-management-backend/internal/group"
	"github.com/gracechapel/church-management-backend/internal/ministry"
	"github.com/gracechapel/church-management-backend/internal/notification"
	"github.com/gracechapel/church-management-backend/internal/prayer"
	"github.com/gracechapel/church-management-backend/internal/reports"
	"github.com/gracechapel/church-management-backend/internal/user"
	"github.com/gracechapel/church-management-backend/middleware"
)

// Setup wires repositories, services and handlers onto the router. Auth
// endpoints and public content reads sit outside the session middleware;
// everything that mutates state requires a session.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := user.NewRepository(db)
	groupRepo := group.NewRepository(db)
	eventRepo := event.NewRepository(db)
	ministryRepo := ministry.NewRepository(db)
	donationRepo := donation.NewRepository(db)
	prayerRepo := prayer.NewRepository(db)
	cmsRepo := cms.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	auditRepo := auditlog.NewRepository(db)
	reportsRepo := reports.NewRepository(db)

	// Services
	auditSvc := auditlog.NewService(auditRepo)
	sessions := auth.NewSessionStore(cfg)
	authSvc := auth.NewService(userRepo, sessions, auditSvc)
	userSvc := user.NewService(userRepo)
	groupSvc := group.NewService(groupRepo, userRepo)
	eventSvc := event.NewService(eventRepo, userRepo)
	ministrySvc := ministry.NewService(ministryRepo, userRepo)
	donationSvc := donation.NewService(donationRepo, userRepo, cfg, auditSvc)
	prayerSvc := prayer.NewService(prayerRepo, userRepo)
	cmsSvc := cms.NewService(cmsRepo, userRepo, cfg)
	notificationSvc := notification.NewService(notificationRepo)
	reportsSvc := reports.NewService(reportsRepo, reports.NewExporter())

	notification.StartKafkaConsumer(cfg, notificationSvc)

	// Handlers
	authHandler := auth.NewHandler(authSvc, cfg)
	userHandler := user.NewHandler(userSvc)
	groupHandler := group.NewHandler(groupSvc)
	eventHandler := event.NewHandler(eventSvc)
	ministryHandler := ministry.NewHandler(ministrySvc)
	donationHandler := donation.NewHandler(donationSvc)
	prayerHandler := prayer.NewHandler(prayerSvc)
	cmsHandler := cms.NewHandler(cmsSvc)
	notificationHandler := notification.NewHandler(notificationSvc)
	auditHandler := auditlog.NewHandler(auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	api := r.Group("/api/v1")

	// Auth. Sign-up and login are rate limited per client IP.
	loginLimiter := middleware.RateLimiter(10, time.Minute)
	api.POST("/sign_up", loginLimiter, authHandler.SignUp)
	api.POST("/login", loginLimiter, authHandler.Login)
	api.GET("/check_session", authHandler.CheckSession)
	api.DELETE("/logout", authHandler.Logout)

	// Public content reads and the contact form.
	api.GET("/sermons", cmsHandler.ListSermons)
	api.GET("/sermons/:id", cmsHandler.GetSermon)
	api.GET("/pages", cmsHandler.ListPages)
	api.GET("/pages/:id", cmsHandler.GetPage)
	api.GET("/pages_by_slug/:slug", cmsHandler.GetPageBySlug)
	api.GET("/announcements", cmsHandler.ListAnnouncements)
	api.GET("/announcements/:id", cmsHandler.GetAnnouncement)
	api.GET("/navigation_menus", cmsHandler.ListMenus)
	api.GET("/navigation_menus/:id", cmsHandler.GetMenu)
	api.GET("/site_settings", cmsHandler.ListSettings)
	api.GET("/site_settings/:key", cmsHandler.GetSetting)
	api.POST("/contact_messages", cmsHandler.CreateContactMessage)
	api.GET("/prayer_requests", prayerHandler.List)
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.GET("/ministries", ministryHandler.List)
	api.GET("/ministries/:id", ministryHandler.Get)

	// Online donations; verification comes back from the payment gateway.
	api.POST("/donations/start", donationHandler.Start)
	api.POST("/donations/verify", donationHandler.Verify)

	protected := api.Group("/")
	protected.Use(middleware.SessionAuth(authSvc))
	{
		protected.GET("/users", userHandler.ListUsers)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.PATCH("/users/:id", userHandler.UpdateUser)
		protected.DELETE("/users/:id", userHandler.DeleteUser)

		protected.GET("/members", userHandler.ListMembers)
		protected.GET("/members/:id", userHandler.GetMember)
		protected.POST("/members", userHandler.CreateMember)
		protected.PATCH("/members/:id", userHandler.UpdateMember)
		protected.DELETE("/members/:id", userHandler.DeleteMember)

		protected.GET("/groups", groupHandler.List)
		protected.GET("/groups/:id", groupHandler.Get)
		protected.POST("/groups", groupHandler.Create)
		protected.PATCH("/groups/:id", groupHandler.Update)
		protected.DELETE("/groups/:id", groupHandler.Delete)

		protected.GET("/group_members", groupHandler.ListMembers)
		protected.GET("/group_members/:id", groupHandler.GetMember)
		protected.POST("/group_members", groupHandler.AddMember)
		protected.PATCH("/group_members/:id", groupHandler.UpdateMember)
		protected.DELETE("/group_members/:id", groupHandler.RemoveMember)

		protected.POST("/events", eventHandler.Create)
		protected.PATCH("/events/:id", eventHandler.Update)
		protected.DELETE("/events/:id", eventHandler.Delete)

		protected.GET("/event_registrations", eventHandler.ListRegistrations)
		protected.GET("/event_registrations/:id", eventHandler.GetRegistration)
		protected.POST("/event_registrations", eventHandler.Register)
		protected.PATCH("/event_registrations/:id", eventHandler.UpdateRegistration)
		protected.DELETE("/event_registrations/:id", eventHandler.CancelRegistration)

		protected.POST("/ministries", ministryHandler.Create)
		protected.PATCH("/ministries/:id", ministryHandler.Update)
		protected.DELETE("/ministries/:id", ministryHandler.Delete)

		protected.GET("/ministry_leaders", ministryHandler.ListLeaders)
		protected.POST("/ministry_leaders", ministryHandler.AddLeader)
		protected.PATCH("/ministry_leaders/:id", ministryHandler.UpdateLeader)
		protected.DELETE("/ministry_leaders/:id", ministryHandler.RemoveLeader)

		protected.GET("/ministry_members", ministryHandler.ListRoster)
		protected.POST("/ministry_members", ministryHandler.AddMember)
		protected.PATCH("/ministry_members/:id", ministryHandler.UpdateMember)
		protected.DELETE("/ministry_members/:id", ministryHandler.RemoveMember)

		protected.GET("/donations", donationHandler.List)
		protected.GET("/donations/:id", donationHandler.Get)
		protected.POST("/donations", donationHandler.Create)
		protected.DELETE("/donations/:id", donationHandler.Delete)

		protected.GET("/prayer_requests/:id", prayerHandler.Get)
		protected.POST("/prayer_requests", prayerHandler.Create)
		protected.PATCH("/prayer_requests/:id", prayerHandler.Update)
		protected.DELETE("/prayer_requests/:id", prayerHandler.Delete)

		protected.POST("/sermons", cmsHandler.CreateSermon)
		protected.PATCH("/sermons/:id", cmsHandler.UpdateSermon)
		protected.DELETE("/sermons/:id", cmsHandler.DeleteSermon)

		protected.POST("/pages", cmsHandler.CreatePage)
		protected.PATCH("/pages/:id", cmsHandler.UpdatePage)
		protected.DELETE("/pages/:id", cmsHandler.DeletePage)

		protected.POST("/announcements", cmsHandler.CreateAnnouncement)
		protected.PATCH("/announcements/:id", cmsHandler.UpdateAnnouncement)
		protected.DELETE("/announcements/:id", cmsHandler.DeleteAnnouncement)

		protected.GET("/media", cmsHandler.ListMedia)
		protected.GET("/media/:id", cmsHandler.GetMedia)
		protected.POST("/media", cmsHandler.CreateMedia)
		protected.POST("/media/upload", cmsHandler.UploadMedia)
		protected.DELETE("/media/:id", cmsHandler.DeleteMedia)

		protected.GET("/contact_messages", cmsHandler.ListContactMessages)
		protected.GET("/contact_messages/:id", cmsHandler.GetContactMessage)
		protected.PATCH("/contact_messages/:id", cmsHandler.UpdateContactMessage)
		protected.DELETE("/contact_messages/:id", cmsHandler.DeleteContactMessage)

		protected.PUT("/site_settings", cmsHandler.UpsertSetting)
		protected.DELETE("/site_settings/:key", cmsHandler.DeleteSetting)

		protected.POST("/navigation_menus", cmsHandler.CreateMenu)
		protected.PATCH("/navigation_menus/:id", cmsHandler.UpdateMenu)
		protected.DELETE("/navigation_menus/:id", cmsHandler.DeleteMenu)

		protected.POST("/navigation_items", cmsHandler.CreateNavigationItem)
		protected.PATCH("/navigation_items/:id", cmsHandler.UpdateNavigationItem)
		protected.DELETE("/navigation_items/:id", cmsHandler.DeleteNavigationItem)

		protected.GET("/notifications", notificationHandler.List)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		protected.GET("/auditlogs", auditHandler.List)

		protected.GET("/reports/donations", reportsHandler.ExportDonations)
		protected.GET("/reports/members", reportsHandler.ExportMembers)
	}
}
