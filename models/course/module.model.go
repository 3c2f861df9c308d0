package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module represents an ordered section within a course
type Module struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID   uuid.UUID `json:"course_id" gorm:"type:uuid;not null;uniqueIndex:idx_modules_course_order"`
	OrderIndex int       `json:"order_index" gorm:"not null;uniqueIndex:idx_modules_course_order"` // display sequence within the course
	Title      string    `json:"title" gorm:"not null"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Module) TableName() string { return "modules" }

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
