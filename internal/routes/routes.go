package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/taskhubapp/taskhub-backend/internal/config"
	"github.com/taskhubapp/taskhub-backend/internal/handlers"
	"github.com/taskhubapp/taskhub-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	categoryHandler *handlers.CategoryHandler,
	healthHandler *handlers.HealthHandler,
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

	// Auth — public, with a stricter rate limit
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

	protected := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", protected, authHandler.Logout)
	api.Get("/auth/me", protected, authHandler.Me)

	// Users
	api.Get("/users", protected, userHandler.List)
	api.Get("/users/:id", protected, userHandler.Get)
	api.Put("/users/:id", protected, userHandler.Update)
	api.Delete("/users/:id", protected, userHandler.Delete)

	// Tasks
	api.Post("/tasks", protected, taskHandler.Create)
	api.Get("/tasks", protected, taskHandler.List)
	api.Get("/tasks/:id", protected, taskHandler.Get)
	api.Put("/tasks/:id", protected, taskHandler.Update)
	api.Delete("/tasks/:id", protected, taskHandler.Delete)
	api.Patch("/tasks/:id/status", protected, taskHandler.MarkStatus)

	// Categories — creation is admin-only
	api.Get("/categories", protected, categoryHandler.List)
	api.Post("/categories", protected, middleware.AdminRequired(db, cfg), categoryHandler.Create)
}
