package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/apperrors"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
)

// AdminCreateModule creates a new module in a course
func (ctl *CourseController) AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	reqData, ok := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Append after the last module when no order index is provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		next, err := ctl.Modules.NextOrderIndex(courseID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
		}
		orderIndex = next
	}

	module := courseModels.Module{
		CourseID:   courseID,
		Title:      reqData.Title,
		Summary:    reqData.Summary,
		OrderIndex: orderIndex,
	}

	if err := ctl.Modules.Create(&module); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index is already taken in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminListModules lists the modules of a course in display order
func (ctl *CourseController) AdminListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	if _, err := ctl.Courses.GetByID(courseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := ctl.Modules.ListByCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// AdminUpdateModule applies a field-level patch to a module
func (ctl *CourseController) AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uuid.UUID)

	module, err := ctl.Modules.GetByID(moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*courseValidator.UpdateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Summary != nil {
		module.Summary = *reqData.Summary
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}

	if err := ctl.Modules.Update(module); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order index is already taken in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule removes a module and its lessons
func (ctl *CourseController) AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uuid.UUID)

	if err := ctl.Modules.Delete(moduleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
