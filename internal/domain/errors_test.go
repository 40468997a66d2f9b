package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{name: "bad params", err: ErrBadParams, predicate: IsBadParams, want: true},
		{name: "wrapped bad params", err: fmt.Errorf("customer id must be positive: %w", ErrBadParams), predicate: IsBadParams, want: true},
		{name: "conflict", err: ErrAlreadyExists, predicate: IsConflict, want: true},
		{name: "joined conflict", err: errors.Join(ErrAlreadyExists, errors.New("extra context")), predicate: IsConflict, want: true},
		{name: "not exists", err: ErrNotExists, predicate: IsNotExists, want: true},
		{name: "other error is not a conflict", err: ErrNotExists, predicate: IsConflict, want: false},
		{name: "nil error", err: nil, predicate: IsNotExists, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.predicate(tc.err); got != tc.want {
				t.Fatalf("predicate = %v, want %v", got, tc.want)
			}
		})
	}
}
