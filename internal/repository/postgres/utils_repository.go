package postgres

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Код нарушения уникальности в PostgreSQL
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
