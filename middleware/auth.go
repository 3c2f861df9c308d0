package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lms/config"
	"lms/models"
	"lms/repository"
	"lms/security"
)

const identityKey = "identity"

// Auth resolves bearer tokens into identities. It is built once at startup
// from the user repository and configuration and attached to routes
// explicitly.
type Auth struct {
	users *repository.UserRepository
	cfg   *config.Config
}

func NewAuth(users *repository.UserRepository, cfg *config.Config) *Auth {
	return &Auth{users: users, cfg: cfg}
}

// Authenticate is the permissive first level of the chain: a missing,
// invalid or expired token, or an unknown subject, leaves the request
// without an identity and lets it proceed. The identity is re-resolved
// from the store on every request; a revoked or role-changed user takes
// effect on the very next call.
func (a *Auth) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Next()
	}
	tokenString := authHeader[len("Bearer "):]

	claims, err := security.ParseToken(a.cfg.JWTKey, tokenString)
	if err != nil {
		return c.Next()
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return c.Next()
	}

	user, err := a.users.GetByID(userID)
	if err != nil {
		return c.Next()
	}

	c.Locals(identityKey, user)
	return c.Next()
}

// RequireAuth rejects requests that Authenticate left without an identity.
func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	if Identity(c) == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	return c.Next()
}

// RequireAdmin rejects authenticated identities that do not hold the admin
// role.
func (a *Auth) RequireAdmin(c *fiber.Ctx) error {
	user := Identity(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	if !user.IsAdmin() {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}
	return c.Next()
}

// Identity returns the identity resolved for this request, or nil.
func Identity(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(identityKey).(*models.User)
	return user
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
