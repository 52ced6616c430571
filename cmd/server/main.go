package main

import (
	"log"
	"time"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/db"
	"optimum_stay_app_go/handlers"
	"optimum_stay_app_go/middleware"
	"optimum_stay_app_go/models"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment, cfg.TursoDatabaseURL, cfg.TursoAuthToken); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Booking{},
		&models.BookedDate{},
		&models.BlockedDate{},
		&models.ApartmentSettings{},
		&models.HeroContent{},
		&models.GalleryImage{},
		&models.GalleryVideo{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files (locally stored gallery uploads)
	e.Static("/static", "static")

	// Public routes (no authentication required)
	e.GET("/api/content", handlers.GetContentHandler)
	e.GET("/api/settings/public", handlers.GetPublicSettingsHandler)
	e.GET("/api/availability", handlers.GetAvailabilityHandler)
	e.POST("/api/availability/check", handlers.CheckAvailabilityHandler)
	e.POST("/api/bookings", handlers.CreateBookingHandler, middleware.BookingRateLimiter.Middleware())
	e.GET("/api/bookings/:code", handlers.GetBookingByCodeHandler)

	e.POST("/login", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())

	// Authenticated routes
	authed := e.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/logout", handlers.LogoutHandler)
		authed.GET("/api/me", handlers.GetCurrentUserHandler)
	}

	// Admin routes
	admin := e.Group("/admin/api")
	admin.Use(middleware.RequireAuth())
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/bookings", handlers.ListBookingsHandler)
		admin.GET("/bookings/export", handlers.ExportBookingsHandler)
		admin.PUT("/bookings/:id/status", handlers.UpdateBookingStatusHandler)
		admin.DELETE("/bookings/:id", handlers.DeleteBookingHandler)

		admin.GET("/blocked-dates", handlers.ListBlockedDatesHandler)
		admin.POST("/blocked-dates", handlers.CreateBlockedDateHandler)
		admin.DELETE("/blocked-dates/:id", handlers.DeleteBlockedDateHandler)

		admin.GET("/settings", handlers.GetSettingsHandler)
		admin.PUT("/settings", handlers.UpdateSettingsHandler)

		admin.PUT("/hero", handlers.UpdateHeroHandler)
		admin.POST("/images", handlers.AddGalleryImageHandler)
		admin.DELETE("/images/:id", handlers.DeleteGalleryImageHandler)
		admin.PUT("/images/reorder", handlers.ReorderGalleryImagesHandler)
		admin.POST("/videos", handlers.AddGalleryVideoHandler)
		admin.DELETE("/videos/:id", handlers.DeleteGalleryVideoHandler)
	}

	// Start background cleanup jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
