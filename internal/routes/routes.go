package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/scamshield/scamshield-backend/internal/config"
	"github.com/scamshield/scamshield-backend/internal/handlers"
	"github.com/scamshield/scamshield-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Reports. Fixed paths are registered before /:id so "search",
	// "user/my-reports" and "admin/pending" never match as an id.
	reports := api.Group("/reports")
	reports.Get("/", reportHandler.List)
	reports.Get("/search", reportHandler.Search)
	reports.Get("/user/my-reports", middleware.JWTProtected(cfg), reportHandler.MyReports)
	reports.Get("/admin/pending",
		middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), reportHandler.Pending)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Post("/", middleware.JWTProtected(cfg), reportHandler.Create)
	reports.Put("/:id/verify",
		middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), reportHandler.Verify)
	reports.Put("/:id/reject",
		middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), reportHandler.Reject)
}
