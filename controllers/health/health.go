package healthController

import (
	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/middleware"
	"lms/services/supabase"
)

// HealthController exposes API readiness details.
type HealthController struct {
	Cfg      *config.Config
	Supabase *supabase.Client
}

func New(cfg *config.Config, sb *supabase.Client) *HealthController {
	return &HealthController{Cfg: cfg, Supabase: sb}
}

// Check returns the basic health information for the API
func (ctl *HealthController) Check(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
		"app":                 "v1",
		"status":              "ok",
		"environment":         ctl.Cfg.Environment,
		"supabase_configured": ctl.Supabase.Configured(),
	})
}
