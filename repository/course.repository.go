package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModels "lms/models/course"
)

// CourseRepository owns every course query, including the cascade that
// removes a course's modules and lessons with it.
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(course *courseModels.Course) error {
	return translate(r.db.Create(course).Error)
}

func (r *CourseRepository) GetByID(id uuid.UUID) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := r.db.Where("id = ?", id).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *CourseRepository) GetBySlug(slug string, publishedOnly bool) (*courseModels.Course, error) {
	query := r.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var course courseModels.Course
	if err := query.First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *CourseRepository) List(page, limit int, publishedOnly bool) ([]courseModels.Course, int64, error) {
	var courses []courseModels.Course
	var total int64

	query := r.db.Model(&courseModels.Course{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, translate(err)
	}
	return courses, total, nil
}

func (r *CourseRepository) Update(course *courseModels.Course) error {
	return translate(r.db.Save(course).Error)
}

// Delete removes the course together with its modules and lessons in a
// single transaction. Partial removal never survives an error.
func (r *CourseRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uuid.UUID
		if err := tx.Model(&courseModels.Module{}).Where("course_id = ?", id).Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		if len(moduleIDs) > 0 {
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&courseModels.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&courseModels.Module{}).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&courseModels.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}
