// Package pgcommon holds helpers shared by the gorm repositories.
package pgcommon

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// MapWriteError converts driver errors of an insert into the errs taxonomy.
func MapWriteError(paramName string, err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return err
}

// MapReadError converts a missing row into an ObjectNotFoundError.
func MapReadError(paramName string, id kernel.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(paramName, id.String(), err)
	}
	return err
}

// LocationColumn stores an unset location as an empty string.
func LocationColumn(l kernel.Location) string {
	if l.IsZero() {
		return ""
	}
	return l.String()
}

// LocationFromColumn is the inverse of LocationColumn.
func LocationFromColumn(s string) (kernel.Location, error) {
	if s == "" {
		return kernel.Location{}, nil
	}
	return kernel.NewLocation(s)
}

// UUIDColumn converts an optional identifier to its column value.
func UUIDColumn(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// UUIDFromColumn is the inverse of UUIDColumn.
func UUIDFromColumn(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent optional reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
