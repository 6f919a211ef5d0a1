package persistence

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/shared"
)

// PostgreSQL SQLSTATE classes surfaced by constraint enforcement
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgNumericOutOfRange   = "22003"
)

// TranslateError maps storage errors onto domain errors.
// Constraint violations are raised synchronously at write time and surfaced
// unmodified beyond this mapping; there are no retries and no silent
// correction.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrUniqueViolation
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return shared.ErrMissingRelation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return shared.ErrUniqueViolation
		case pgForeignKeyViolation, pgNotNullViolation:
			return shared.ErrMissingRelation
		case pgCheckViolation:
			return shared.ErrDomainConstraint
		case pgNumericOutOfRange:
			return shared.ErrPrecisionOverflow
		}
	}

	return err
}
