// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"templeconnect-api/config"
	"templeconnect-api/controllers"
	"templeconnect-api/middleware"
	"templeconnect-api/repositories"
	"templeconnect-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Repositories and services
	businessRepo := repositories.NewBusinessRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	reviewService := services.NewReviewService(businessRepo, eventRepo, emailService)

	// Controllers
	authController := controllers.NewAdminAuthController(db, cfg.JWTSecret)
	businessSubmissionController := controllers.NewBusinessSubmissionController(businessRepo, reviewService)
	businessController := controllers.NewBusinessController(businessRepo, reviewService)
	eventSubmissionController := controllers.NewEventSubmissionController(eventRepo, reviewService)
	draftController := controllers.NewDraftController(db)
	uploadController := controllers.NewUploadController(cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Uploaded images are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")

	// Public routes (rate limited: submission forms and uploads are open to
	// anonymous visitors)
	public := api.Group("/")
	public.Use(middleware.RateLimit(30, 10))
	{
		public.POST("/business-submissions", businessSubmissionController.Submit)
		public.POST("/event-submissions", eventSubmissionController.Submit)
		public.GET("/business/approved", businessController.GetApproved)
		public.GET("/events/upcoming", eventSubmissionController.Upcoming)
		public.POST("/upload", uploadController.Upload)
	}

	// Admin auth endpoint stays outside the session guard so login works
	api.POST("/admin/auth", authController.Handle)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/me", authController.Me)

		businessSubmissions := admin.Group("/business-submissions")
		{
			businessSubmissions.GET("", businessSubmissionController.List)
			businessSubmissions.GET("/:id", businessSubmissionController.Get)
			businessSubmissions.PUT("/:id", businessSubmissionController.Update)
			businessSubmissions.PATCH("/:id", businessSubmissionController.Patch)
			businessSubmissions.DELETE("/:id", businessSubmissionController.Delete)
		}

		businesses := admin.Group("/businesses")
		{
			businesses.PATCH("/:id", businessController.Update)
			businesses.DELETE("/:id", businessController.Delist)
		}

		eventSubmissions := admin.Group("/event-submissions")
		{
			eventSubmissions.GET("", eventSubmissionController.List)
			eventSubmissions.GET("/:id", eventSubmissionController.Get)
			eventSubmissions.PUT("/:id", eventSubmissionController.Update)
			eventSubmissions.DELETE("/:id", eventSubmissionController.Delete)
		}

		draft := admin.Group("/event-draft")
		{
			draft.GET("", draftController.Load)
			draft.PUT("", draftController.Save)
			draft.DELETE("", draftController.Clear)
		}
	}
}
