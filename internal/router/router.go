package router

import (
	"log"
	"net/http"
	"time"

	"github.com/campuskart/backend/internal/handlers"
	"github.com/campuskart/backend/internal/middleware"
	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/realtime"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/campuskart/backend/pkg/ai"
	"github.com/campuskart/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	// Blanket per-IP ceiling across all endpoints: 100 requests / 15 minutes
	e.Use(eMiddleware.RateLimiterWithConfig(eMiddleware.RateLimiterConfig{
		Store: eMiddleware.NewRateLimiterMemoryStoreWithConfig(eMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(100.0 / (15 * 60)),
			Burst:     100,
			ExpiresIn: 15 * time.Minute,
		}),
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, hub *realtime.Hub, analyzer *ai.Analyzer, mailer handlers.OTPMailer, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := db.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.Category{},
		&models.Listing{},
		&models.NoteMetadata{},
		&models.Message{},
		&models.Notification{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Campus Kart API is running"})
	})

	// Uploaded files are served statically
	e.Static("/uploads", cfg.UploadDir)

	// Real-time relay; unauthenticated side channel for chat UI echo
	e.GET("/ws", func(c echo.Context) error {
		return realtime.ServeWS(hub, c.Response(), c.Request())
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	listingRepo := repositories.NewPostgresListingRepository(db)
	noteRepo := repositories.NewPostgresNoteRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	reviewRepo := repositories.NewPostgresReviewRepository(db)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, mailer, cfg.EmailDomain)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	e.GET("/api/categories", categoryHandler.GetCategories)

	listingHandler := handlers.NewListingHandler(listingRepo)
	e.GET("/api/listings", listingHandler.GetListings)
	e.GET("/api/listings/:id", listingHandler.GetListing)

	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	e.GET("/api/reviews/user/:userId", reviewHandler.GetUserReviews)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api group.")

	api.POST("/listings", listingHandler.CreateListing)
	api.PUT("/listings/:id/status", listingHandler.UpdateStatus)
	api.DELETE("/listings/:id", listingHandler.DeleteListing)
	log.Println("Listing routes configured.")

	messageHandler := handlers.NewMessageHandler(messageRepo, notificationRepo)
	api.POST("/messages", messageHandler.SendMessage)
	api.GET("/messages", messageHandler.GetConversations)
	api.GET("/messages/thread", messageHandler.GetThread)
	log.Println("Message routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	api.POST("/reviews", reviewHandler.CreateReview)
	log.Println("Review routes configured.")

	uploadHandler, err := handlers.NewUploadHandler(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload handler: %v", err)
	}
	api.POST("/upload", uploadHandler.Upload)
	log.Println("Upload routes configured.")

	aiHandler := handlers.NewAIHandler(analyzer)
	api.POST("/ai/generate-description", aiHandler.GenerateDescription)
	log.Println("AI routes configured.")

	// --- Admin routes (JWT + ADMIN role) ---
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	adminHandler := handlers.NewAdminHandler(userRepo, noteRepo, listingRepo, notificationRepo)
	adminHandler.RegisterAdminRoutes(adminGroup)

	// Category creation is moderated like the other admin resources
	adminCategories := e.Group("/api/categories")
	adminCategories.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	adminCategories.POST("", categoryHandler.CreateCategory)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
