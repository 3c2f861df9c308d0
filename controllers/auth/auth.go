package authController

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"lms/apperrors"
	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	"lms/security"
	"lms/utils"
	authValidator "lms/validators/auth"
)

// AuthController handles registration, login and identity introspection.
type AuthController struct {
	Users *repository.UserRepository
	Cfg   *config.Config
	Mail  *utils.EmailService
}

func New(users *repository.UserRepository, cfg *config.Config, mail *utils.EmailService) *AuthController {
	return &AuthController{Users: users, Cfg: cfg, Mail: mail}
}

// Register creates a learner identity. Instructor and admin identities are
// created only through the admin user CRUD.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	hashedPassword, err := security.HashPassword(reqData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Role:         models.RoleLearner,
		PasswordHash: &hashedPassword,
	}

	if err := ctl.Users.Create(&newUser); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Best-effort welcome email; registration never fails on mail errors.
	if ctl.Mail.Configured() {
		go func(email, name string) {
			if err := ctl.Mail.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Error sending welcome email to %s: %v", email, err)
			}
		}(newUser.Email, newUser.Name)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login verifies credentials and issues an access token.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.Users.GetByEmail(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Identities provisioned through an external provider carry no local
	// password and cannot log in here.
	if user.PasswordHash == nil || !security.CheckPassword(reqData.Password, *user.PasswordHash) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	ttl := time.Duration(ctl.Cfg.AccessTokenMinutes) * time.Minute
	token, err := security.GenerateToken(ctl.Cfg.JWTKey, ttl, user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the identity resolved for the request.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.Identity(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}
