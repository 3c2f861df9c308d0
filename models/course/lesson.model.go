package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson content kinds
const (
	ContentTypeVideo = "video"
	ContentTypeText  = "text"
	ContentTypeQuiz  = "quiz"
	ContentTypeLab   = "lab"
)

// Lesson represents individual learning content within a module
type Lesson struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ModuleID        uuid.UUID `json:"module_id" gorm:"type:uuid;not null;uniqueIndex:idx_lessons_module_slug"`
	Slug            string    `json:"slug" gorm:"not null;uniqueIndex:idx_lessons_module_slug"` // unique within its module
	Title           string    `json:"title" gorm:"not null"`
	ContentType     string    `json:"content_type" gorm:"not null;default:'text'"` // video, text, quiz, lab
	MDURL           string    `json:"md_url"`                                      // markdown content location
	VideoURL        string    `json:"video_url"`
	DurationMinutes *int      `json:"duration_minutes"`
	OrderIndex      int       `json:"order_index" gorm:"not null;default:0"` // display sequence within the module
	Published       bool      `json:"published" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Lesson) TableName() string { return "lessons" }

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.ContentType == "" {
		l.ContentType = ContentTypeText
	}
	return nil
}

// ValidContentType reports whether kind is one of the known lesson kinds.
func ValidContentType(kind string) bool {
	switch kind {
	case ContentTypeVideo, ContentTypeText, ContentTypeQuiz, ContentTypeLab:
		return true
	}
	return false
}
