package domain

import "testing"

func TestDishValidate(t *testing.T) {
	tests := []struct {
		name    string
		dish    Dish
		wantErr error
	}{
		{
			name:    "valid dish",
			dish:    Dish{ID: 1, Name: "salmon", Price: 89.89, Active: true},
			wantErr: nil,
		},
		{
			name:    "inactive dish is still valid",
			dish:    Dish{ID: 4, Name: "soup", Price: 59, Active: false},
			wantErr: nil,
		},
		{
			name:    "zero id",
			dish:    Dish{ID: 0, Name: "salmon", Price: 89.89, Active: true},
			wantErr: ErrBadParams,
		},
		{
			name:    "name of two characters",
			dish:    Dish{ID: 1, Name: "ab", Price: 10, Active: true},
			wantErr: ErrBadParams,
		},
		{
			name:    "name of three characters",
			dish:    Dish{ID: 1, Name: "tea", Price: 10, Active: true},
			wantErr: nil,
		},
		{
			// Два многобайтовых символа — длина считается в символах, не в байтах.
			name:    "name of two multibyte characters",
			dish:    Dish{ID: 1, Name: "чи", Price: 10, Active: true},
			wantErr: ErrBadParams,
		},
		{
			name:    "name of three multibyte characters",
			dish:    Dish{ID: 1, Name: "чай", Price: 10, Active: true},
			wantErr: nil,
		},
		{
			name:    "zero price",
			dish:    Dish{ID: 1, Name: "salmon", Price: 0, Active: true},
			wantErr: ErrBadParams,
		},
		{
			name:    "negative price",
			dish:    Dish{ID: 1, Name: "salmon", Price: -5, Active: true},
			wantErr: ErrBadParams,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dish.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !IsBadParams(err) {
				t.Fatalf("expected bad params, got %v", err)
			}
		})
	}
}
