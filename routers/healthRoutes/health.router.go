package healthRoutes

import (
	"github.com/gofiber/fiber/v2"

	healthController "lms/controllers/health"
)

// SetupHealthRoutes sets up the readiness endpoint
func SetupHealthRoutes(app *fiber.App, ctl *healthController.HealthController) {
	app.Get("/v1/health", ctl.Check)
}
