package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "lms/controllers/user"
	"lms/middleware"
	userValidator "lms/validators/user"
)

// SetupUserRoutes sets up the admin identity CRUD
func SetupUserRoutes(app *fiber.App, ctl *userController.UserController, auth *middleware.Auth) {
	group := app.Group("/v1/admin/users", auth.Authenticate, auth.RequireAuth, auth.RequireAdmin)

	group.Post("/", userValidator.CreateUser(), ctl.AdminCreateUser)
	group.Get("/", userValidator.ListUsers(), ctl.AdminListUsers)
	group.Get("/:id", userValidator.UserID(), ctl.AdminGetUser)
	group.Patch("/:id", userValidator.UserID(), userValidator.UpdateUser(), ctl.AdminUpdateUser)
	group.Delete("/:id", userValidator.UserID(), ctl.AdminDeleteUser)
}
