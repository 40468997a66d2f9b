package memory

import (
	"context"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type dishRepositoryInMemory struct {
	store *Store
}

// NewDishRepository возвращает in-memory реализацию DishRepository.
func NewDishRepository(store *Store) domain.DishRepository {
	return &dishRepositoryInMemory{store: store}
}

func (r *dishRepositoryInMemory) Create(_ context.Context, dish domain.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.dishes[dish.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.store.dishes[dish.ID] = dish
	return nil
}

func (r *dishRepositoryInMemory) Get(_ context.Context, id int64) (domain.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.dishes[id], nil
}

func (r *dishRepositoryInMemory) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.dishes[id]; !exists {
		return domain.ErrNotExists
	}
	delete(r.store.dishes, id)

	// Каскад: позиции заказов и лайки блюда.
	for key := range r.store.lines {
		if key.dishID == id {
			delete(r.store.lines, key)
		}
	}
	for key := range r.store.likes {
		if key.dishID == id {
			delete(r.store.likes, key)
		}
	}
	return nil
}

func (r *dishRepositoryInMemory) UpdatePrice(_ context.Context, id int64, price float64) error {
	if price <= 0 {
		return domain.ErrBadParams
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	dish, exists := r.store.dishes[id]
	if !exists || !dish.Active {
		// Отсутствие и неактивность дают один и тот же отказ.
		return domain.ErrNotExists
	}
	dish.Price = price
	r.store.dishes[id] = dish
	return nil
}

func (r *dishRepositoryInMemory) UpdateActiveStatus(_ context.Context, id int64, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	dish, exists := r.store.dishes[id]
	if !exists {
		return domain.ErrNotExists
	}
	dish.Active = active
	r.store.dishes[id] = dish
	return nil
}

var _ domain.DishRepository = (*dishRepositoryInMemory)(nil)
