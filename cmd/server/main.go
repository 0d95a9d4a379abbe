package main

import (
	"context"
	"log"

	"github.com/campuskart/backend/internal/realtime"
	"github.com/campuskart/backend/internal/router"
	"github.com/campuskart/backend/pkg/ai"
	"github.com/campuskart/backend/pkg/config"
	"github.com/campuskart/backend/pkg/mailer"
	"github.com/campuskart/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Outbound email; an empty SMTP host disables delivery
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	// Gemini listing analysis is optional; without an API key the AI
	// endpoint responds 503
	var analyzer *ai.Analyzer
	if cfg.GeminiAPIKey != "" {
		analyzer, err = ai.NewAnalyzer(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini analyzer: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, AI analysis disabled.")
	}

	// Real-time chat relay
	hub := realtime.NewHub()
	go hub.Run()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, hub, analyzer, smtpMailer, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
