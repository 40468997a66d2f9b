package domain

import (
	"testing"
	"time"
)

func TestOrderValidate(t *testing.T) {
	placed := time.Date(2024, 7, 19, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		order   Order
		wantErr error
	}{
		{name: "valid order", order: Order{ID: 1, PlacedAt: placed}, wantErr: nil},
		{name: "zero id", order: Order{ID: 0, PlacedAt: placed}, wantErr: ErrBadParams},
		{name: "negative id", order: Order{ID: -1, PlacedAt: placed}, wantErr: ErrBadParams},
		{name: "zero timestamp", order: Order{ID: 1}, wantErr: ErrBadParams},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
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

func TestOrderLineProfit(t *testing.T) {
	line := OrderLine{DishID: 2, Amount: 3, Price: 23}
	if got := line.Profit(); got != 69 {
		t.Fatalf("profit = %v, want 69", got)
	}
}
