package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anjiri1684/workforce_tracker/handlers"
	"github.com/anjiri1684/workforce_tracker/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	auth := app.Group("/auth")
	auth.Post("/register", h.RegisterUser)
	auth.Post("/login", h.LoginUser)
	auth.Get("/me", middleware.Protected(), h.GetCurrentUser)
}
