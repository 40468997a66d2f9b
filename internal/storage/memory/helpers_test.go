package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

func newOrder(id int64) domain.Order {
	return domain.Order{
		ID:       id,
		PlacedAt: time.Date(2024, 7, 19, 14, 0, 0, 0, time.UTC),
	}
}

func newDish(id int64, name string, price float64, active bool) domain.Dish {
	return domain.Dish{ID: id, Name: name, Price: price, Active: active}
}

// mustCreateFixture кладёт в хранилище клиента 1, заказ 1 и активное блюдо 1.
func mustCreateFixture(
	t *testing.T,
	ctx context.Context,
	customers domain.CustomerRepository,
	orders domain.OrderRepository,
	dishes domain.DishRepository,
) {
	t.Helper()

	if err := customers.Create(ctx, newCustomer(1)); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if err := orders.Create(ctx, newOrder(1)); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := dishes.Create(ctx, newDish(1, "salmon", 89.89, true)); err != nil {
		t.Fatalf("create dish: %v", err)
	}
}
