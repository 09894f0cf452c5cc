package persistent

import (
	"errors"

	"vidtube/services/api/internal/entity"

	"gorm.io/gorm"
)

// translateError maps driver errors onto the entity sentinels. It relies on the
// connection being opened with TranslateError.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrDuplicate
	default:
		return err
	}
}

// casResult interprets a versioned write: no matched row means the record is gone
// or was changed since it was read.
func casResult(tx *gorm.DB) error {
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return entity.ErrStaleVersion
	}
	return nil
}
