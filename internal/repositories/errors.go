package repositories

import (
	"errors"

	"bitewise/internal/apperrors"

	"gorm.io/gorm"
)

// translate maps GORM errors to the application error taxonomy.
func translate(op string, err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("%s", notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &apperrors.ConflictError{Message: op + ": record already exists"}
	default:
		return &apperrors.StorageError{Op: op, Err: err}
	}
}
