package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/database"
	"github.com/gracechapel/church-management-backend/routes"
	"github.com/gracechapel/church-management-backend/utils"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("redis init failed: %v", err)
	}
	utils.InitKafka(cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("could not create upload directory: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Stored media is served straight off disk.
	router.StaticFS("/uploads", http.Dir(cfg.UploadDir))

	routes.Setup(router, db, cfg)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
