package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/anjiri1684/workforce_tracker/models"
)

type CreateCourseRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   *string `json:"description"`
	DurationHours *int    `json:"durationHours" validate:"omitempty,min=0"`
	IsActive      *bool   `json:"isActive"`
}

func (h *Handler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.Store.GetAllCourses(c.UserContext())
	if err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(courses)
}

func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if verr := validateStruct(req); verr != nil {
		return respondValidationError(c, verr)
	}

	// New courses count as active unless the payload says otherwise.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	course := models.Course{
		Name:          req.Name,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		IsActive:      isActive,
	}
	if err := h.Store.CreateCourse(c.UserContext(), &course); err != nil {
		return respondStorageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func (h *Handler) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondValidationError(c, fieldError("id", "must be a valid UUID"))
	}

	type UpdateCourseRequest struct {
		Name          *string `json:"name"`
		Description   *string `json:"description"`
		DurationHours *int    `json:"durationHours" validate:"omitempty,min=0"`
		IsActive      *bool   `json:"isActive"`
	}
	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if verr := validateStruct(req); verr != nil {
		return respondValidationError(c, verr)
	}

	ctx := c.UserContext()
	course, err := h.Store.GetCourseByID(ctx, id)
	if err != nil {
		return respondStorageError(c, err)
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.DurationHours != nil {
		course.DurationHours = req.DurationHours
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.Store.UpdateCourse(ctx, &course); err != nil {
		return respondStorageError(c, err)
	}
	return c.JSON(course)
}
