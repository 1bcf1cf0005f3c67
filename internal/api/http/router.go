package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/christopherjparrett/TheUniverse/internal/api/http/handlers"
	"github.com/christopherjparrett/TheUniverse/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Planets        *handlers.PlanetsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are public; every mutating
// planet route and /auth/me sit behind the bearer guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health", cfg.Health.Health)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	planets := app.Group("/planets")
	planets.Get("/", cfg.Planets.ListPlanets)
	planets.Get("/:id", cfg.Planets.GetPlanet)
	planets.Post("/", cfg.AuthMiddleware.Handle, cfg.Planets.CreatePlanet)
	planets.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Planets.UpdatePlanet)
	planets.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Planets.DeletePlanet)
}
