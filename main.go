// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"templeconnect-api/config"
	"templeconnect-api/database"
	"templeconnect-api/jobs"
	"templeconnect-api/middleware"
	"templeconnect-api/routes"
	"templeconnect-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the initial admin account
	if err := database.Seed(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed admin account: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// CORS: the admin console and public site run on their own origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://templeconnect.org"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request logging middleware
	router.Use(middleware.RequestLogger())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Email notifications for review decisions
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Purge stale event drafts in the background
	draftCleanup := jobs.NewDraftCleanupJob(db, time.Hour, time.Duration(cfg.DraftTTLHours)*time.Hour)
	draftCleanup.Start()
	defer draftCleanup.Stop()

	// Start server
	log.Printf("Starting TempleConnect API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
