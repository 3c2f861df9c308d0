package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course represents a complete learning course
type Course struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Locale      string    `json:"locale" gorm:"not null;default:'pt-BR'"`
	Description string    `json:"description"`
	Published   bool      `json:"published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string { return "courses" }

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Locale == "" {
		c.Locale = "pt-BR"
	}
	return nil
}
