package sqlstore

import (
	"strings"

	"counterhub/internal/errors"

	"gorm.io/gorm"
)

// Error checks rely on GORM's TranslateError first; the message patterns cover
// driver errors that reach us untranslated (for example from raw expressions).

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return containsAny(err,
		"duplicate key value",      // postgres 23505
		"duplicate entry",          // mysql 1062
		"unique constraint failed", // sqlite
	)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return containsAny(err,
		"violates foreign key constraint", // postgres 23503
		"a foreign key constraint fails",  // mysql 1452
		"foreign key constraint failed",   // sqlite
	)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return containsAny(err,
		"violates check constraint", // postgres 23514
		"check constraint",          // mysql 3819 and sqlite
	)
}

func isNotNullConstraintViolation(err error) bool {
	return containsAny(err,
		"violates not-null constraint", // postgres 23502
		"cannot be null",               // mysql 1048
		"not null constraint failed",   // sqlite
	)
}

func containsAny(err error, patterns ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
