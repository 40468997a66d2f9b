package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

// Коды ошибок PostgreSQL (класс 23 — integrity constraint violation).
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgCodeForeignKeyViolation
}

func isCheckViolation(err error) bool {
	code := pgErrorCode(err)
	return code == pgCodeCheckViolation || code == pgCodeNotNullViolation
}

// mapInsertError переводит ошибку вставки сущности в таксономию результатов:
// ограничения формы становятся ErrBadParams, конфликт ключа — ErrAlreadyExists.
// Валидация в domain и ограничение в базе дают один и тот же результат.
func mapInsertError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrAlreadyExists
	case isCheckViolation(err), isForeignKeyViolation(err):
		return domain.ErrBadParams
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// mapAssociationError — то же для ассоциаций, где отсутствующий родитель
// является ErrNotExists, а не нарушением формы.
func mapAssociationError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrAlreadyExists
	case isForeignKeyViolation(err):
		return domain.ErrNotExists
	case isCheckViolation(err):
		return domain.ErrBadParams
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
