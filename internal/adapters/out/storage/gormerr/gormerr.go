// Package gormerr maps GORM errors onto the domain error types. The
// database must be opened with gorm.Config.TranslateError so that driver
// specific constraint errors arrive as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
package gormerr

import (
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate wraps err into the matching domain error for the object
// identified by paramName and key. Unknown errors are returned unchanged.
func Translate(err error, paramName string, key any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(paramName, key, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, key, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewObjectIsReferencedErrorWithCause(paramName, key, err)
	default:
		return err
	}
}
