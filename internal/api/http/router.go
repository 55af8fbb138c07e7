package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Salsapil/alx-backend-user-data/internal/api/http/handlers"
	"github.com/Salsapil/alx-backend-user-data/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Users             *handlers.UsersHandler
	Sessions          *handlers.SessionsHandler
	Reset             *handlers.ResetHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenue"})
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/users", cfg.Users.Register)
	app.Post("/sessions", cfg.Sessions.Login)
	app.Post("/reset_password", cfg.Reset.Request)
	app.Put("/reset_password", cfg.Reset.Confirm)

	app.Delete("/sessions", cfg.SessionMiddleware.Handle, cfg.Sessions.Logout)
	app.Get("/profile", cfg.SessionMiddleware.Handle, cfg.Users.Profile)
}
