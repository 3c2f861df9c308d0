package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/apperrors"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/repository"
	courseValidator "lms/validators/course"
)

// CourseController handles the admin content CRUD and the public catalog.
// Admin routes behind it are gated by RequireAdmin.
type CourseController struct {
	Courses *repository.CourseRepository
	Modules *repository.ModuleRepository
	Lessons *repository.LessonRepository
}

func New(courses *repository.CourseRepository, modules *repository.ModuleRepository, lessons *repository.LessonRepository) *CourseController {
	return &CourseController{Courses: courses, Modules: modules, Lessons: lessons}
}

// AdminCreateCourse creates a new course
func (ctl *CourseController) AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Slug:        reqData.Slug,
		Title:       reqData.Title,
		Locale:      reqData.Locale,
		Description: reqData.Description,
	}

	if err := ctl.Courses.Create(&course); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already in use!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminListCourses lists all courses, drafts included
func (ctl *CourseController) AdminListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListRequest)

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}

	courses, total, err := ctl.Courses.List(page, limit, false)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCourse gets a single course with its modules
func (ctl *CourseController) AdminGetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	course, err := ctl.Courses.GetByID(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := ctl.Modules.ListByCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}

// AdminUpdateCourse applies a field-level patch to a course
func (ctl *CourseController) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	course, err := ctl.Courses.GetByID(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Slug != nil {
		course.Slug = *reqData.Slug
	}
	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Locale != nil {
		course.Locale = *reqData.Locale
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}

	if err := ctl.Courses.Update(course); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already in use!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course with its modules and lessons
func (ctl *CourseController) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	if err := ctl.Courses.Delete(courseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminPublishCourse publishes or unpublishes a course
func (ctl *CourseController) AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uuid.UUID)

	course, err := ctl.Courses.GetByID(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedPublish").(*courseValidator.PublishRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Published = reqData.Published
	if err := ctl.Courses.Update(course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	message := "Course unpublished successfully!"
	if reqData.Published {
		message = "Course published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}
