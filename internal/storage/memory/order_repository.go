package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type orderRepositoryInMemory struct {
	store *Store
}

// NewOrderRepository возвращает in-memory реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryInMemory{store: store}
}

func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[order.ID]; exists {
		return domain.ErrAlreadyExists
	}
	// Точность до секунды, как у колонки TIMESTAMP(0).
	order.PlacedAt = order.PlacedAt.Truncate(time.Second)
	r.store.orders[order.ID] = order
	return nil
}

func (r *orderRepositoryInMemory) Get(_ context.Context, id int64) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.orders[id], nil
}

func (r *orderRepositoryInMemory) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[id]; !exists {
		return domain.ErrNotExists
	}
	delete(r.store.orders, id)

	// Каскад: привязка к клиенту и позиции заказа.
	delete(r.store.placements, id)
	for key := range r.store.lines {
		if key.orderID == id {
			delete(r.store.lines, key)
		}
	}
	return nil
}

func (r *orderRepositoryInMemory) Place(_ context.Context, custID, orderID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[custID]; !exists {
		return domain.ErrNotExists
	}
	if _, exists := r.store.orders[orderID]; !exists {
		return domain.ErrNotExists
	}
	if _, exists := r.store.placements[orderID]; exists {
		// У заказа может быть не больше одного клиента.
		return domain.ErrAlreadyExists
	}
	r.store.placements[orderID] = custID
	return nil
}

func (r *orderRepositoryInMemory) Placer(_ context.Context, orderID int64) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	custID, ok := r.store.placements[orderID]
	if !ok {
		return domain.Customer{}, nil
	}
	return r.store.customers[custID], nil
}

func (r *orderRepositoryInMemory) AddLine(_ context.Context, orderID, dishID int64, amount int32) error {
	if amount <= 0 {
		return domain.ErrBadParams
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.orders[orderID]; !exists {
		return domain.ErrNotExists
	}
	dish, exists := r.store.dishes[dishID]
	if !exists || !dish.Active {
		// Неактивное блюдо нельзя добавить в заказ.
		return domain.ErrNotExists
	}
	key := lineKey{orderID: orderID, dishID: dishID}
	if _, exists := r.store.lines[key]; exists {
		return domain.ErrAlreadyExists
	}
	r.store.lines[key] = orderLine{amount: amount, price: dish.Price}
	return nil
}

func (r *orderRepositoryInMemory) RemoveLine(_ context.Context, orderID, dishID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := lineKey{orderID: orderID, dishID: dishID}
	if _, exists := r.store.lines[key]; !exists {
		return domain.ErrNotExists
	}
	delete(r.store.lines, key)
	return nil
}

func (r *orderRepositoryInMemory) Lines(_ context.Context, orderID int64) ([]domain.OrderLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := make([]domain.OrderLine, 0)
	for key, line := range r.store.lines {
		if key.orderID != orderID {
			continue
		}
		lines = append(lines, domain.OrderLine{
			DishID: key.dishID,
			Amount: line.amount,
			Price:  line.price,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].DishID < lines[j].DishID })
	return lines, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
