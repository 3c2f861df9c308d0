package courseValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/middleware"
)

// Helper to validate URL-friendly slugs
func isValidSlug(slug string) bool {
	re := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	return re.MatchString(slug)
}

// CourseID parses the :id path parameter into Locals("courseID").
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// CreateCourseRequest is the validated course create payload.
type CreateCourseRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Locale      string `json:"locale"`
	Description string `json:"description"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest carries the course patch payload; only supplied
// fields are applied.
type UpdateCourseRequest struct {
	Slug        *string `json:"slug"`
	Title       *string `json:"title"`
	Locale      *string `json:"locale"`
	Description *string `json:"description"`
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// PublishRequest toggles the published flag.
type PublishRequest struct {
	Published bool `json:"published"`
}

// Publish validator middleware shared by courses and lessons
func Publish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PublishRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPublish", reqData)
		return c.Next()
	}
}

// ListRequest is the pagination query payload.
type ListRequest struct {
	Page  *int `query:"page"`
	Limit *int `query:"limit"`
}

// ListCourses validator middleware; missing values fall back to page 1,
// limit 10.
func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseSlug parses the :slug path parameter into Locals("courseSlug").
func CourseSlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		if !isValidSlug(slug) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course slug!", nil)
		}
		c.Locals("courseSlug", slug)
		return c.Next()
	}
}
