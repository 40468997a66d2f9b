package memory_test

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
	"github.com/vladislavdragonenkov/bistro/internal/storage/memory"
)

func newCustomer(id int64) domain.Customer {
	return domain.Customer{
		ID:       id,
		FullName: "name",
		Phone:    "0502220000",
		Address:  "Haifa",
	}
}

func TestCustomerRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository(memory.NewStore())

	customer := newCustomer(1)
	if err := repo.Create(ctx, customer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(ctx, customer.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored != customer {
		t.Fatalf("stored customer differs: %+v", stored)
	}
}

func TestCustomerRepository_CreateErrors(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository(memory.NewStore())

	if err := repo.Create(ctx, newCustomer(1)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, newCustomer(1)); !domain.IsConflict(err) {
		t.Fatalf("expected already exists, got %v", err)
	}

	bad := newCustomer(2)
	bad.Address = "ab"
	if err := repo.Create(ctx, bad); !domain.IsBadParams(err) {
		t.Fatalf("expected bad params, got %v", err)
	}

	// Двухсимвольный адрес из многобайтовых рун тоже короткий.
	bad = newCustomer(3)
	bad.Address = "אב"
	if err := repo.Create(ctx, bad); !domain.IsBadParams(err) {
		t.Fatalf("expected bad params for two-character address, got %v", err)
	}
	if err := repo.Create(ctx, domain.Customer{ID: -1, FullName: "x", Phone: "y", Address: "abc"}); !domain.IsBadParams(err) {
		t.Fatalf("expected bad params for negative id, got %v", err)
	}
}

func TestCustomerRepository_GetMissingReturnsSentinel(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository(memory.NewStore())

	stored, err := repo.Get(ctx, 404)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Exists() {
		t.Fatalf("expected not-found sentinel, got %+v", stored)
	}
}

func TestCustomerRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository(memory.NewStore())

	if err := repo.Create(ctx, newCustomer(1)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if stored, _ := repo.Get(ctx, 1); stored.Exists() {
		t.Fatalf("customer must be gone after delete: %+v", stored)
	}
	if err := repo.Delete(ctx, 1); !domain.IsNotExists(err) {
		t.Fatalf("expected not exists on second delete, got %v", err)
	}
}

func TestCustomerRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	customers := memory.NewCustomerRepository(store)
	orders := memory.NewOrderRepository(store)
	dishes := memory.NewDishRepository(store)
	likes := memory.NewLikeRepository(store)

	mustCreateFixture(t, ctx, customers, orders, dishes)
	if err := orders.Place(ctx, 1, 1); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if err := likes.Like(ctx, 1, 1); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	if err := customers.Delete(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	placer, err := orders.Placer(ctx, 1)
	if err != nil {
		t.Fatalf("placer failed: %v", err)
	}
	if placer.Exists() {
		t.Fatalf("placement must cascade away: %+v", placer)
	}
	liked, err := likes.LikedBy(ctx, 1)
	if err != nil {
		t.Fatalf("liked by failed: %v", err)
	}
	if len(liked) != 0 {
		t.Fatalf("likes must cascade away: %+v", liked)
	}
}
