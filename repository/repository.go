package repository

import (
	"errors"

	"gorm.io/gorm"

	"lms/apperrors"
)

// translate maps store-level failures onto the shared error taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict
	default:
		return err
	}
}
