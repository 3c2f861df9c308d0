package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/apperrors"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	"lms/security"
	userValidator "lms/validators/user"
)

// UserController handles the admin identity CRUD. Every route behind it is
// gated by RequireAdmin.
type UserController struct {
	Users *repository.UserRepository
}

func New(users *repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

// AdminCreateUser creates an identity with an assignable role. The password
// is optional; a passwordless identity cannot log in locally.
func (ctl *UserController) AdminCreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newUser := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Role:  reqData.Role,
	}

	if reqData.Password != "" {
		hashedPassword, err := security.HashPassword(reqData.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		newUser.PasswordHash = &hashedPassword
	}

	if err := ctl.Users.Create(&newUser); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", newUser)
}

// AdminListUsers lists identities with pagination
func (ctl *UserController) AdminListUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*userValidator.ListRequest)

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}

	users, total, err := ctl.Users.List(page, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetUser fetches a single identity
func (ctl *UserController) AdminGetUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	user, err := ctl.Users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// AdminUpdateUser applies a field-level patch to an identity
func (ctl *UserController) AdminUpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	user, err := ctl.Users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Email != nil {
		user.Email = *reqData.Email
	}
	if reqData.Role != nil {
		user.Role = *reqData.Role
	}
	if reqData.Password != nil {
		hashedPassword, err := security.HashPassword(*reqData.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user.PasswordHash = &hashedPassword
	}

	if err := ctl.Users.Update(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// AdminDeleteUser removes an identity permanently
func (ctl *UserController) AdminDeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uuid.UUID)

	if err := ctl.Users.Delete(userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
