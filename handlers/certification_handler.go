package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/anjiri1684/workforce_tracker/models"
)

type CreateCertificationRequest struct {
	WorkerID          string  `json:"workerId" validate:"required,uuid"`
	CourseID          *string `json:"courseId"`
	Name              string  `json:"name" validate:"required"`
	CertificateNumber string  `json:"certificateNumber"`
	IssuedDate        *string `json:"issuedDate"`
	ExpiryDate        *string `json:"expiryDate"`
	Status            string  `json:"status" validate:"omitempty,oneof=active expired other"`
}

func (h *Handler) GetCertifications(c *fiber.Ctx) error {
	certifications, err := h.Store.GetAllCertifications(c.UserContext())
	if err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(certifications)
}

func (h *Handler) CreateCertification(c *fiber.Ctx) error {
	var req CreateCertificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if verr := validateStruct(req); verr != nil {
		return respondValidationError(c, verr)
	}

	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return respondValidationError(c, fieldError("workerId", "must be a valid UUID"))
	}

	cert, verr := buildCertification(CertificationPayload{
		CourseID:          req.CourseID,
		Name:              req.Name,
		CertificateNumber: req.CertificateNumber,
		IssuedDate:        req.IssuedDate,
		ExpiryDate:        req.ExpiryDate,
		Status:            req.Status,
	}, workerID)
	if verr != nil {
		return respondValidationError(c, verr)
	}

	if err := h.Store.CreateCertification(c.UserContext(), cert); err != nil {
		return respondStorageError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

// GetExpiringCertifications lists the certifications whose expiry date
// falls within the day window taken from the path. Lapsed certifications
// are included on purpose.
func (h *Handler) GetExpiringCertifications(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Params("days"))
	if err != nil {
		return respondValidationError(c, fieldError("days", "must be an integer number of days"))
	}

	certifications, err := h.Store.GetExpiringCertifications(c.UserContext(), days, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrNegativeWindow) {
			return respondValidationError(c, fieldError("days", "must not be negative"))
		}
		return respondStorageError(c, err)
	}
	return c.JSON(certifications)
}
