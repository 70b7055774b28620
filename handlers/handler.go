package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	config "github.com/anjiri1684/workforce_tracker/configs"
	"github.com/anjiri1684/workforce_tracker/models"
	"github.com/anjiri1684/workforce_tracker/storage"
)

// Handler carries the request handlers' dependencies. It is built once in
// main and injected into the routes.
type Handler struct {
	Store storage.Store
}

func New(store storage.Store) *Handler {
	return &Handler{Store: store}
}

// respondStorageError maps the storage layer's sentinel errors onto the
// HTTP error taxonomy. Anything unrecognised becomes a 500.
func respondStorageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEntry):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Duplicate entry detected",
		})
	case errors.Is(err, models.ErrForeignKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Referenced record does not exist",
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	default:
		return respondInternalError(c, err)
	}
}

func respondInternalError(c *fiber.Ctx, err error) error {
	log.Printf("🔥 API error: %v | Path: %s | Method: %s", err, c.Path(), c.Method())

	detail := "Something went wrong"
	if config.Config("APP_ENV") == "development" {
		detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   detail,
	})
}

func respondValidationError(c *fiber.Ctx, verr *models.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"errors":  verr.Fields,
	})
}
