package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/anjiri1684/workforce_tracker/services"
)

// GetStats returns the dashboard counts, recomputed from full snapshots
// on every request.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	workers, err := h.Store.GetAllWorkers(ctx)
	if err != nil {
		return respondStorageError(c, err)
	}
	courses, err := h.Store.GetAllCourses(ctx)
	if err != nil {
		return respondStorageError(c, err)
	}
	certifications, err := h.Store.GetAllCertifications(ctx)
	if err != nil {
		return respondStorageError(c, err)
	}

	return c.JSON(services.ComputeStats(workers, courses, certifications, time.Now()))
}
