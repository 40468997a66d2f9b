package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestMapInsertError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: pgError(pgCodeUniqueViolation), want: domain.ErrAlreadyExists},
		{name: "check violation", err: pgError(pgCodeCheckViolation), want: domain.ErrBadParams},
		{name: "not null violation", err: pgError(pgCodeNotNullViolation), want: domain.ErrBadParams},
		{name: "foreign key violation", err: pgError(pgCodeForeignKeyViolation), want: domain.ErrBadParams},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapInsertError("insert", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("mapInsertError() = %v, want %v", got, tc.want)
			}
		})
	}

	// Прочие ошибки не входят в таксономию и остаются обёрнутым отказом хранилища.
	plain := errors.New("connection reset")
	got := mapInsertError("insert", plain)
	if !errors.Is(got, plain) {
		t.Fatalf("expected wrapped original error, got %v", got)
	}
	if domain.IsBadParams(got) || domain.IsConflict(got) || domain.IsNotExists(got) {
		t.Fatalf("plain error must stay outside taxonomy: %v", got)
	}
}

func TestMapAssociationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: pgError(pgCodeUniqueViolation), want: domain.ErrAlreadyExists},
		{name: "foreign key violation maps to not exists", err: pgError(pgCodeForeignKeyViolation), want: domain.ErrNotExists},
		{name: "check violation", err: pgError(pgCodeCheckViolation), want: domain.ErrBadParams},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapAssociationError("insert", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("mapAssociationError() = %v, want %v", got, tc.want)
			}
		})
	}
}
