package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles an identity may hold. Instructor carries no extra permissions yet;
// admin gates check RoleAdmin exactly.
const (
	RoleLearner    = "learner"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents an authenticable principal (learner, instructor or admin).
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'learner'"`
	PasswordHash *string   `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// BeforeCreate assigns the primary key and normalizes the unique email.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleLearner
	}
	return nil
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleLearner || role == RoleInstructor || role == RoleAdmin
}

// NormalizeEmail lowercases an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
