package memory

import (
	"context"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type customerRepositoryInMemory struct {
	store *Store
}

// NewCustomerRepository возвращает in-memory реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepositoryInMemory{store: store}
}

func (r *customerRepositoryInMemory) Create(_ context.Context, customer domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[customer.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *customerRepositoryInMemory) Get(_ context.Context, id int64) (domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Отсутствие клиента — нулевое значение, не ошибка.
	return r.store.customers[id], nil
}

func (r *customerRepositoryInMemory) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[id]; !exists {
		return domain.ErrNotExists
	}
	delete(r.store.customers, id)

	// Каскад: ассоциации размещения и лайки клиента.
	for orderID, custID := range r.store.placements {
		if custID == id {
			delete(r.store.placements, orderID)
		}
	}
	for key := range r.store.likes {
		if key.custID == id {
			delete(r.store.likes, key)
		}
	}
	return nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
