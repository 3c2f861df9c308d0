package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/middleware"
	courseModels "lms/models/course"
)

// LessonID parses the :id path parameter into Locals("lessonID").
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}
		c.Locals("lessonID", id)
		return c.Next()
	}
}

// CreateLessonRequest is the validated lesson create payload. A zero
// OrderIndex means "append after the last lesson".
type CreateLessonRequest struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	ContentType     string `json:"content_type"`
	MDURL           string `json:"md_url"`
	VideoURL        string `json:"video_url"`
	DurationMinutes *int   `json:"duration_minutes"`
	OrderIndex      int    `json:"order_index"`
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Slug == "" || !isValidSlug(reqData.Slug) {
			errors["slug"] = "Slug must contain only lowercase letters, digits and hyphens!"
		}
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.ContentType == "" {
			reqData.ContentType = courseModels.ContentTypeText
		} else if !courseModels.ValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be video, text, quiz or lab!"
		}
		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be greater than 0!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLessonRequest carries the lesson patch payload; only supplied
// fields are applied.
type UpdateLessonRequest struct {
	Slug            *string `json:"slug"`
	Title           *string `json:"title"`
	ContentType     *string `json:"content_type"`
	MDURL           *string `json:"md_url"`
	VideoURL        *string `json:"video_url"`
	DurationMinutes *int    `json:"duration_minutes"`
	OrderIndex      *int    `json:"order_index"`
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Slug != nil && !isValidSlug(*reqData.Slug) {
			errors["slug"] = "Slug must contain only lowercase letters, digits and hyphens!"
		}
		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.ContentType != nil && !courseModels.ValidContentType(*reqData.ContentType) {
			errors["content_type"] = "Content type must be video, text, quiz or lab!"
		}
		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors["duration_minutes"] = "Duration must be greater than 0!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
