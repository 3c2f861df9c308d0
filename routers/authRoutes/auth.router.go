package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"
)

// SetupAuthRoutes sets up registration, login and identity introspection
func SetupAuthRoutes(app *fiber.App, ctl *authController.AuthController, auth *middleware.Auth) {
	group := app.Group("/v1/auth")

	group.Post("/register", authValidator.Register(), ctl.Register)
	group.Post("/login", authValidator.Login(), ctl.Login)
	group.Get("/me", auth.Authenticate, auth.RequireAuth, ctl.Me)
}
