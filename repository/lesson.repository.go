package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModels "lms/models/course"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// Create inserts a lesson after checking its module exists.
func (r *LessonRepository) Create(lesson *courseModels.Lesson) error {
	if err := r.db.Where("id = ?", lesson.ModuleID).First(&courseModels.Module{}).Error; err != nil {
		return translate(err)
	}
	return translate(r.db.Create(lesson).Error)
}

func (r *LessonRepository) GetByID(id uuid.UUID) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	if err := r.db.Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, translate(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) ListByModule(moduleID uuid.UUID, publishedOnly bool) ([]courseModels.Lesson, error) {
	query := r.db.Where("module_id = ?", moduleID)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var lessons []courseModels.Lesson
	if err := query.Order("order_index asc").Find(&lessons).Error; err != nil {
		return nil, translate(err)
	}
	return lessons, nil
}

// NextOrderIndex returns the next free display position within a module.
func (r *LessonRepository) NextOrderIndex(moduleID uuid.UUID) (int, error) {
	var maxOrder int
	err := r.db.Model(&courseModels.Lesson{}).
		Where("module_id = ?", moduleID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, translate(err)
	}
	return maxOrder + 1, nil
}

func (r *LessonRepository) Update(lesson *courseModels.Lesson) error {
	return translate(r.db.Save(lesson).Error)
}

func (r *LessonRepository) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&courseModels.Lesson{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
