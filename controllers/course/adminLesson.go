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

// AdminCreateLesson creates a new lesson in a module
func (ctl *CourseController) AdminCreateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uuid.UUID)

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Append after the last lesson when no order index is provided
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		next, err := ctl.Lessons.NextOrderIndex(moduleID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
		}
		orderIndex = next
	}

	lesson := courseModels.Lesson{
		ModuleID:        moduleID,
		Slug:            reqData.Slug,
		Title:           reqData.Title,
		ContentType:     reqData.ContentType,
		MDURL:           reqData.MDURL,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
		OrderIndex:      orderIndex,
	}

	if err := ctl.Lessons.Create(&lesson); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already taken in this module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminListLessons lists the lessons of a module in display order, drafts
// included
func (ctl *CourseController) AdminListLessons(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uuid.UUID)

	if _, err := ctl.Modules.GetByID(moduleID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lessons, err := ctl.Lessons.ListByModule(moduleID, false)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// AdminUpdateLesson applies a field-level patch to a lesson
func (ctl *CourseController) AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uuid.UUID)

	lesson, err := ctl.Lessons.GetByID(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Slug != nil {
		lesson.Slug = *reqData.Slug
	}
	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.ContentType != nil {
		lesson.ContentType = *reqData.ContentType
	}
	if reqData.MDURL != nil {
		lesson.MDURL = *reqData.MDURL
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}
	if reqData.DurationMinutes != nil {
		lesson.DurationMinutes = reqData.DurationMinutes
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}

	if err := ctl.Lessons.Update(lesson); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already taken in this module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson removes a lesson permanently
func (ctl *CourseController) AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uuid.UUID)

	if err := ctl.Lessons.Delete(lessonID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminPublishLesson publishes or unpublishes a lesson
func (ctl *CourseController) AdminPublishLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uuid.UUID)

	lesson, err := ctl.Lessons.GetByID(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedPublish").(*courseValidator.PublishRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson.Published = reqData.Published
	if err := ctl.Lessons.Update(lesson); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	message := "Lesson unpublished successfully!"
	if reqData.Published {
		message = "Lesson published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, lesson)
}
