package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModels "lms/models/course"
)

type ModuleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// Create inserts a module after checking its course exists, so a dangling
// reference surfaces as NotFound instead of a foreign-key fault.
func (r *ModuleRepository) Create(module *courseModels.Module) error {
	if err := r.db.Where("id = ?", module.CourseID).First(&courseModels.Course{}).Error; err != nil {
		return translate(err)
	}
	return translate(r.db.Create(module).Error)
}

func (r *ModuleRepository) GetByID(id uuid.UUID) (*courseModels.Module, error) {
	var module courseModels.Module
	if err := r.db.Where("id = ?", id).First(&module).Error; err != nil {
		return nil, translate(err)
	}
	return &module, nil
}

func (r *ModuleRepository) ListByCourse(courseID uuid.UUID) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	err := r.db.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules).Error
	if err != nil {
		return nil, translate(err)
	}
	return modules, nil
}

// NextOrderIndex returns the next free display position within a course.
func (r *ModuleRepository) NextOrderIndex(courseID uuid.UUID) (int, error) {
	var maxOrder int
	err := r.db.Model(&courseModels.Module{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, translate(err)
	}
	return maxOrder + 1, nil
}

func (r *ModuleRepository) Update(module *courseModels.Module) error {
	return translate(r.db.Save(module).Error)
}

// Delete removes the module and its lessons in a single transaction.
func (r *ModuleRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&courseModels.Module{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}
