package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/dieselmedia/booking-api/internal/errs"
)

// translate maps store errors onto the error taxonomy.
func translate(err error, entity, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		op = fmt.Sprintf("%s (sqlstate %s)", op, pgErr.Code)
	}
	return errs.Storage(err, op)
}
