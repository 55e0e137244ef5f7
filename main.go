package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"cuthours/config"
	"cuthours/database"
	"cuthours/handlers"
	"cuthours/middleware"
	"cuthours/services"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: lockout, rate limiting and the live inbox feed
	// degrade to no-ops without it.
	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without it: %v", err)
		rdb = nil
	}

	// Services
	lockout := services.NewLoginLockout(rdb)
	contactLimiter := services.NewRateLimiter(rdb, "ratelimit:contact:", cfg.ContactRateLimit, cfg.ContactRateWindow)
	events := services.NewEvents(rdb)
	mailer := services.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	assistant := services.NewHTTPAssistant(cfg.AIBaseURL, cfg.AITimeout)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, db, lockout)
	portfoliosHandler := handlers.NewPortfoliosHandler(cfg, db)
	contactHandler := handlers.NewContactHandler(db, mailer, events)
	aiHandler := handlers.NewAIHandler(db, assistant, events)
	inboxHandler := handlers.NewInboxHandler(cfg, db, events)

	// Router
	r := gin.Default()
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.SecurityHeaders())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Auth routes requiring partial token (pre-TOTP)
	authPartial := r.Group("/api/auth")
	authPartial.Use(middleware.PartialAuthAllowed(cfg.JWTSecret))
	{
		authPartial.POST("/totp-verify", authHandler.TOTPVerify)
	}

	// Public visitor routes
	r.GET("/api/portfolio/view", portfoliosHandler.View)
	r.GET("/api/portfolios/:portfolioId", portfoliosHandler.ViewByID)
	r.POST("/api/contact", middleware.RateLimit(contactLimiter), contactHandler.Submit)
	r.POST("/api/ai", aiHandler.Query)

	// Protected owner routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		// Account
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/auth/change-password", authHandler.ChangePassword)
		protected.POST("/auth/totp-setup", authHandler.TOTPSetup)
		protected.POST("/auth/totp-confirm", authHandler.TOTPConfirm)

		// Portfolio
		protected.GET("/portfolio", portfoliosHandler.Get)
		protected.PUT("/portfolio", portfoliosHandler.Save)
		protected.GET("/portfolio/availability/:portfolioId", portfoliosHandler.Availability)

		// Inbox
		protected.GET("/inbox/responses", inboxHandler.ListResponses)
		protected.PATCH("/inbox/responses/:id/status", inboxHandler.UpdateResponseStatus)
		protected.GET("/inbox/sessions", inboxHandler.ListSessions)
		protected.GET("/inbox/sessions/:sessionId/messages", inboxHandler.SessionMessages)
	}

	// WebSocket route (auth via query param)
	r.GET("/ws/inbox", inboxHandler.HandleWebSocket)

	fmt.Printf("Server starting on :%s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
