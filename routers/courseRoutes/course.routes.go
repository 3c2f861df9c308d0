package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"
)

// SetupCourseRoutes sets up the public catalog and the admin content CRUD
func SetupCourseRoutes(app *fiber.App, ctl *controllers.CourseController, auth *middleware.Auth) {
	// Public catalog: published content only
	public := app.Group("/v1/courses")
	public.Get("/", courseValidator.ListCourses(), ctl.ListCourses)
	public.Get("/:slug", courseValidator.CourseSlug(), ctl.GetCourse)

	adminChain := []fiber.Handler{auth.Authenticate, auth.RequireAuth, auth.RequireAdmin}

	// Course CRUD
	adminCourses := app.Group("/v1/admin/courses", adminChain...)
	adminCourses.Post("/", courseValidator.CreateCourse(), ctl.AdminCreateCourse)
	adminCourses.Get("/", courseValidator.ListCourses(), ctl.AdminListCourses)
	adminCourses.Get("/:id", courseValidator.CourseID(), ctl.AdminGetCourse)
	adminCourses.Patch("/:id", courseValidator.CourseID(), courseValidator.UpdateCourse(), ctl.AdminUpdateCourse)
	adminCourses.Delete("/:id", courseValidator.CourseID(), ctl.AdminDeleteCourse)
	adminCourses.Post("/:id/publish", courseValidator.CourseID(), courseValidator.Publish(), ctl.AdminPublishCourse)

	// Module management
	adminCourses.Post("/:id/modules", courseValidator.CourseID(), courseValidator.CreateModule(), ctl.AdminCreateModule)
	adminCourses.Get("/:id/modules", courseValidator.CourseID(), ctl.AdminListModules)

	adminModules := app.Group("/v1/admin/modules", adminChain...)
	adminModules.Patch("/:id", courseValidator.ModuleID(), courseValidator.UpdateModule(), ctl.AdminUpdateModule)
	adminModules.Delete("/:id", courseValidator.ModuleID(), ctl.AdminDeleteModule)

	// Lesson management
	adminModules.Post("/:id/lessons", courseValidator.ModuleID(), courseValidator.CreateLesson(), ctl.AdminCreateLesson)
	adminModules.Get("/:id/lessons", courseValidator.ModuleID(), ctl.AdminListLessons)

	adminLessons := app.Group("/v1/admin/lessons", adminChain...)
	adminLessons.Patch("/:id", courseValidator.LessonID(), courseValidator.UpdateLesson(), ctl.AdminUpdateLesson)
	adminLessons.Delete("/:id", courseValidator.LessonID(), ctl.AdminDeleteLesson)
	adminLessons.Post("/:id/publish", courseValidator.LessonID(), courseValidator.Publish(), ctl.AdminPublishLesson)
}
