package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/urbanfood/usersvc/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, user *handlers.UserHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	u := v1.Group("/usuarios")
	u.Post("/signup", user.Signup)
	u.Post("/login", user.Login)
	u.Get("/logado", authMW, user.Me)
	u.Get("/", user.List)
}
