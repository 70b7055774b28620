package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anjiri1684/workforce_tracker/handlers"
)

func RecordRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/stats", h.GetStats)

	app.Get("/workers", h.GetWorkers)
	app.Post("/workers", h.CreateWorkerWithCertifications)
	app.Get("/workers/:id", h.GetWorker)
	app.Put("/workers/:id", h.UpdateWorker)

	app.Get("/courses", h.GetCourses)
	app.Post("/courses", h.CreateCourse)
	app.Put("/courses/:id", h.UpdateCourse)

	app.Get("/certifications", h.GetCertifications)
	app.Post("/certifications", h.CreateCertification)
	app.Get("/certifications/expiring/:days", h.GetExpiringCertifications)
}
