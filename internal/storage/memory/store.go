package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type lineKey struct {
	orderID int64
	dishID  int64
}

type likeKey struct {
	custID int64
	dishID int64
}

type orderLine struct {
	amount int32
	// Цена копируется из блюда в момент добавления позиции.
	price float64
}

// Store — общее in-memory состояние всех репозиториев: один мьютекс
// на все таблицы, поэтому каскадные удаления атомарны.
type Store struct {
	mu         sync.RWMutex
	customers  map[int64]domain.Customer
	orders     map[int64]domain.Order
	dishes     map[int64]domain.Dish
	placements map[int64]int64 // order_id -> cust_id
	lines      map[lineKey]orderLine
	likes      map[likeKey]struct{}
}

// NewStore возвращает пустое in-memory хранилище для локальной разработки и тестов.
func NewStore() *Store {
	return &Store{
		customers:  make(map[int64]domain.Customer),
		orders:     make(map[int64]domain.Order),
		dishes:     make(map[int64]domain.Dish),
		placements: make(map[int64]int64),
		lines:      make(map[lineKey]orderLine),
		likes:      make(map[likeKey]struct{}),
	}
}

// Clear удаляет все строки, сохраняя «структуру» — аналог ClearSchema.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = make(map[int64]domain.Customer)
	s.orders = make(map[int64]domain.Order)
	s.dishes = make(map[int64]domain.Dish)
	s.placements = make(map[int64]int64)
	s.lines = make(map[lineKey]orderLine)
	s.likes = make(map[likeKey]struct{})
}
