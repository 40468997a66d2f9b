package memory_test

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
	"github.com/vladislavdragonenkov/bistro/internal/storage/memory"
)

func TestLikeRepository_LikeUnlike(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	orders := memory.NewOrderRepository(store)
	dishes := memory.NewDishRepository(store)
	likes := memory.NewLikeRepository(store)

	mustCreateFixture(t, ctx, customers, orders, dishes)

	if err := likes.Like(ctx, 1, 1); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := likes.Like(ctx, 1, 1); !domain.IsConflict(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if err := likes.Like(ctx, 99, 1); !domain.IsNotExists(err) {
		t.Fatalf("expected not exists for missing customer, got %v", err)
	}
	if err := likes.Like(ctx, 1, 99); !domain.IsNotExists(err) {
		t.Fatalf("expected not exists for missing dish, got %v", err)
	}

	if err := likes.Unlike(ctx, 1, 1); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if err := likes.Unlike(ctx, 1, 1); !domain.IsNotExists(err) {
		t.Fatalf("expected not exists on second unlike, got %v", err)
	}
}

func TestLikeRepository_LikedByOrdered(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	orders := memory.NewOrderRepository(store)
	dishes := memory.NewDishRepository(store)
	likes := memory.NewLikeRepository(store)

	mustCreateFixture(t, ctx, customers, orders, dishes)
	if err := dishes.Create(ctx, newDish(2, "steak", 130.89, true)); err != nil {
		t.Fatalf("create dish: %v", err)
	}

	if err := likes.Like(ctx, 1, 2); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := likes.Like(ctx, 1, 1); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	liked, err := likes.LikedBy(ctx, 1)
	if err != nil {
		t.Fatalf("liked by failed: %v", err)
	}
	if len(liked) != 2 || liked[0].ID != 1 || liked[1].ID != 2 {
		t.Fatalf("expected dishes ordered by id, got %+v", liked)
	}

	// Неизвестный клиент — пустой список, не ошибка.
	liked, err = likes.LikedBy(ctx, 404)
	if err != nil {
		t.Fatalf("liked by failed: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("expected empty list, got %+v", liked)
	}
}
