package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/anjiri1684/workforce_tracker/models"
	"github.com/anjiri1684/workforce_tracker/utils"
)

type WorkerPayload struct {
	Name         string  `json:"name" validate:"required"`
	DateOfBirth  *string `json:"dateOfBirth"`
	DateOfExpiry *string `json:"dateOfExpiry"`
	Position     *string `json:"position"`
	Department   *string `json:"department"`
	Notes        *string `json:"notes"`
}

type CertificationPayload struct {
	CourseID          *string `json:"courseId"`
	Name              string  `json:"name" validate:"required"`
	CertificateNumber string  `json:"certificateNumber"`
	IssuedDate        *string `json:"issuedDate"`
	ExpiryDate        *string `json:"expiryDate"`
	Status            string  `json:"status" validate:"omitempty,oneof=active expired other"`
}

type CreateWorkerRequest struct {
	Worker         WorkerPayload          `json:"worker"`
	Certifications []CertificationPayload `json:"certifications" validate:"dive"`
}

func (h *Handler) GetWorkers(c *fiber.Ctx) error {
	workers, err := h.Store.GetWorkersWithCertifications(c.UserContext())
	if err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(workers)
}

func (h *Handler) GetWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondValidationError(c, fieldError("id", "must be a valid UUID"))
	}

	worker, err := h.Store.GetWorkerByID(c.UserContext(), id)
	if err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(worker)
}

// CreateWorkerWithCertifications creates one worker, then its
// certifications one at a time. The sequence is not transactional: a
// failure partway through leaves the worker and the earlier
// certifications committed, and the error response tells the caller the
// create may be partially applied.
func (h *Handler) CreateWorkerWithCertifications(c *fiber.Ctx) error {
	var req CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if verr := validateStruct(req); verr != nil {
		return respondValidationError(c, verr)
	}

	worker, verr := buildWorker(req.Worker)
	if verr != nil {
		return respondValidationError(c, verr)
	}

	ctx := c.UserContext()
	if err := h.Store.CreateWorker(ctx, worker); err != nil {
		return respondStorageError(c, err)
	}

	created := []models.Certification{}
	for _, payload := range req.Certifications {
		cert, verr := buildCertification(payload, worker.ID)
		if verr != nil {
			return respondValidationError(c, verr)
		}
		if err := h.Store.CreateCertification(ctx, cert); err != nil {
			return respondStorageError(c, err)
		}
		created = append(created, *cert)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"worker":         worker,
		"certifications": created,
	})
}

func (h *Handler) UpdateWorker(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondValidationError(c, fieldError("id", "must be a valid UUID"))
	}

	type UpdateWorkerRequest struct {
		Name         *string `json:"name"`
		DateOfBirth  *string `json:"dateOfBirth"`
		DateOfExpiry *string `json:"dateOfExpiry"`
		Position     *string `json:"position"`
		Department   *string `json:"department"`
		Notes        *string `json:"notes"`
	}
	var req UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	ctx := c.UserContext()
	worker, err := h.Store.GetWorkerByID(ctx, id)
	if err != nil {
		return respondStorageError(c, err)
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		dob, perr := utils.ParseDatePtr(req.DateOfBirth)
		if perr != nil {
			return respondValidationError(c, fieldError("dateOfBirth", "must be a valid date"))
		}
		worker.DateOfBirth = dob
	}
	if req.DateOfExpiry != nil {
		doe, perr := utils.ParseDatePtr(req.DateOfExpiry)
		if perr != nil {
			return respondValidationError(c, fieldError("dateOfExpiry", "must be a valid date"))
		}
		worker.DateOfExpiry = doe
	}
	if req.Position != nil {
		worker.Position = req.Position
	}
	if req.Department != nil {
		worker.Department = req.Department
	}
	if req.Notes != nil {
		worker.Notes = req.Notes
	}

	if err := h.Store.UpdateWorker(ctx, &worker); err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(worker)
}

func buildWorker(payload WorkerPayload) (*models.Worker, *models.ValidationError) {
	dob, err := utils.ParseDatePtr(payload.DateOfBirth)
	if err != nil {
		return nil, fieldError("dateOfBirth", "must be a valid date")
	}
	doe, err := utils.ParseDatePtr(payload.DateOfExpiry)
	if err != nil {
		return nil, fieldError("dateOfExpiry", "must be a valid date")
	}

	return &models.Worker{
		Name:         payload.Name,
		DateOfBirth:  dob,
		DateOfExpiry: doe,
		Position:     payload.Position,
		Department:   payload.Department,
		Notes:        payload.Notes,
	}, nil
}

func buildCertification(payload CertificationPayload, workerID uuid.UUID) (*models.Certification, *models.ValidationError) {
	var courseID *uuid.UUID
	if payload.CourseID != nil && *payload.CourseID != "" {
		parsed, err := uuid.Parse(*payload.CourseID)
		if err != nil {
			return nil, fieldError("courseId", "must be a valid UUID")
		}
		courseID = &parsed
	}

	issued, err := utils.ParseDatePtr(payload.IssuedDate)
	if err != nil {
		return nil, fieldError("issuedDate", "must be a valid date")
	}
	expiry, err := utils.ParseDatePtr(payload.ExpiryDate)
	if err != nil {
		return nil, fieldError("expiryDate", "must be a valid date")
	}

	number := payload.CertificateNumber
	if number == "" {
		number = utils.GenerateCertificateNumber()
	}

	cert := &models.Certification{
		WorkerID:          workerID,
		CourseID:          courseID,
		Name:              payload.Name,
		CertificateNumber: number,
		ExpiryDate:        expiry,
		Status:            payload.Status,
	}
	if issued != nil {
		cert.IssuedDate = *issued
	}
	return cert, nil
}
