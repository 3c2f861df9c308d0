package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
)

// ListCourses lists published courses for the public catalog
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListRequest)

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}

	courses, total, err := ctl.Courses.List(page, limit, true)
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

// GetCourse returns a published course by slug with its modules and their
// published lessons in display order
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := ctl.Courses.GetBySlug(slug, true)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := ctl.Modules.ListByCourse(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type moduleWithLessons struct {
		courseModels.Module
		Lessons []courseModels.Lesson `json:"lessons"`
	}

	result := make([]moduleWithLessons, len(modules))
	for i, module := range modules {
		lessons, err := ctl.Lessons.ListByModule(module.ID, true)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
		}
		result[i] = moduleWithLessons{Module: module, Lessons: lessons}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"modules": result,
	})
}
