package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type likeRepositoryInMemory struct {
	store *Store
}

// NewLikeRepository возвращает in-memory реализацию LikeRepository.
func NewLikeRepository(store *Store) domain.LikeRepository {
	return &likeRepositoryInMemory{store: store}
}

func (r *likeRepositoryInMemory) Like(_ context.Context, custID, dishID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[custID]; !exists {
		return domain.ErrNotExists
	}
	if _, exists := r.store.dishes[dishID]; !exists {
		return domain.ErrNotExists
	}
	key := likeKey{custID: custID, dishID: dishID}
	if _, exists := r.store.likes[key]; exists {
		return domain.ErrAlreadyExists
	}
	r.store.likes[key] = struct{}{}
	return nil
}

func (r *likeRepositoryInMemory) Unlike(_ context.Context, custID, dishID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := likeKey{custID: custID, dishID: dishID}
	if _, exists := r.store.likes[key]; !exists {
		return domain.ErrNotExists
	}
	delete(r.store.likes, key)
	return nil
}

func (r *likeRepositoryInMemory) LikedBy(_ context.Context, custID int64) ([]domain.Dish, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dishes := make([]domain.Dish, 0)
	for key := range r.store.likes {
		if key.custID != custID {
			continue
		}
		if dish, ok := r.store.dishes[key.dishID]; ok {
			dishes = append(dishes, dish)
		}
	}
	sort.Slice(dishes, func(i, j int) bool { return dishes[i].ID < dishes[j].ID })
	return dishes, nil
}

var _ domain.LikeRepository = (*likeRepositoryInMemory)(nil)
