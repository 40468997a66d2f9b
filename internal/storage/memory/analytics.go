package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type analyticsInMemory struct {
	store *Store
}

// NewAnalytics возвращает in-memory реализацию аналитических запросов.
func NewAnalytics(store *Store) domain.Analytics {
	return &analyticsInMemory{store: store}
}

func (a *analyticsInMemory) OrderTotalPrice(_ context.Context, orderID int64) (float64, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	return a.orderTotalLocked(orderID), nil
}

func (a *analyticsInMemory) MaxCustomerSpend(_ context.Context, custID int64) (float64, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var maxSpend float64
	for orderID, placer := range a.store.placements {
		if placer != custID {
			continue
		}
		if total := a.orderTotalLocked(orderID); total > maxSpend {
			maxSpend = total
		}
	}
	return maxSpend, nil
}

func (a *analyticsInMemory) MostExpensiveAnonymousOrder(_ context.Context) (domain.Order, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	var best domain.Order
	var bestTotal float64
	for id, order := range a.store.orders {
		if _, placed := a.store.placements[id]; placed {
			continue
		}
		total := a.orderTotalLocked(id)
		switch {
		case !best.Exists():
			best, bestTotal = order, total
		case total > bestTotal:
			best, bestTotal = order, total
		case total == bestTotal && id < best.ID:
			// Ничья по сумме решается меньшим идентификатором заказа.
			best = order
		}
	}
	return best, nil
}

func (a *analyticsInMemory) MostLikedDishEqualsMostPurchased(_ context.Context) (bool, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	if len(a.store.dishes) == 0 {
		return false, nil
	}

	likeCounts := make(map[int64]int64)
	for key := range a.store.likes {
		likeCounts[key.dishID]++
	}
	purchaseSums := make(map[int64]int64)
	for key, line := range a.store.lines {
		purchaseSums[key.dishID] += int64(line.amount)
	}

	mostLiked := argmaxDish(a.store.dishes, likeCounts)
	mostPurchased := argmaxDish(a.store.dishes, purchaseSums)
	return mostLiked == mostPurchased, nil
}

func (a *analyticsInMemory) TopFiveDishCustomers(_ context.Context) ([]int64, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	likeCounts := make(map[int64]int64)
	for key := range a.store.likes {
		likeCounts[key.dishID]++
	}

	ranked := make([]int64, 0, len(a.store.dishes))
	for id := range a.store.dishes {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if likeCounts[ranked[i]] != likeCounts[ranked[j]] {
			return likeCounts[ranked[i]] > likeCounts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	topSet := make(map[int64]struct{}, len(ranked))
	for _, id := range ranked {
		topSet[id] = struct{}{}
	}

	seen := make(map[int64]struct{})
	custIDs := make([]int64, 0)
	for orderID, custID := range a.store.placements {
		inSet, total := 0, 0
		for key := range a.store.lines {
			if key.orderID != orderID {
				continue
			}
			total++
			if _, ok := topSet[key.dishID]; ok {
				inSet++
			}
		}
		// Ровно пятёрка лидеров: ни надмножество, ни подмножество.
		if inSet != 5 || total != 5 {
			continue
		}
		if _, dup := seen[custID]; dup {
			continue
		}
		seen[custID] = struct{}{}
		custIDs = append(custIDs, custID)
	}
	sort.Slice(custIDs, func(i, j int) bool { return custIDs[i] < custIDs[j] })
	return custIDs, nil
}

func (a *analyticsInMemory) NonWorthPriceIncreases(_ context.Context) ([]int64, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	type pricePoint struct {
		sum   float64
		count int64
	}
	points := make(map[int64]map[float64]*pricePoint)
	for key, line := range a.store.lines {
		dishPoints, ok := points[key.dishID]
		if !ok {
			dishPoints = make(map[float64]*pricePoint)
			points[key.dishID] = dishPoints
		}
		point, ok := dishPoints[line.price]
		if !ok {
			point = &pricePoint{}
			dishPoints[line.price] = point
		}
		point.sum += float64(line.amount) * line.price
		point.count++
	}

	dishIDs := make([]int64, 0)
	for id, dish := range a.store.dishes {
		if !dish.Active {
			continue
		}
		current, ok := points[id][dish.Price]
		if !ok {
			// Без продаж по текущей цене сравнивать не с чем.
			continue
		}
		currentAvg := current.sum / float64(current.count)
		for price, point := range points[id] {
			if price == dish.Price {
				continue
			}
			if currentAvg < point.sum/float64(point.count) {
				dishIDs = append(dishIDs, id)
				break
			}
		}
	}
	sort.Slice(dishIDs, func(i, j int) bool { return dishIDs[i] < dishIDs[j] })
	return dishIDs, nil
}

func (a *analyticsInMemory) TotalProfitPerMonth(_ context.Context, year int) ([]domain.MonthProfit, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	totals := make(map[int]float64, 12)
	for key, line := range a.store.lines {
		order, ok := a.store.orders[key.orderID]
		if !ok || order.PlacedAt.Year() != year {
			continue
		}
		totals[int(order.PlacedAt.Month())] += float64(line.amount) * line.price
	}

	months := make([]domain.MonthProfit, 0, 12)
	for month := 12; month >= 1; month-- {
		months = append(months, domain.MonthProfit{Month: month, Profit: totals[month]})
	}
	return months, nil
}

func (a *analyticsInMemory) DishRecommendations(_ context.Context, custID int64) ([]int64, error) {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()

	mine := make(map[int64]struct{})
	likesByCustomer := make(map[int64]map[int64]struct{})
	for key := range a.store.likes {
		if key.custID == custID {
			mine[key.dishID] = struct{}{}
			continue
		}
		set, ok := likesByCustomer[key.custID]
		if !ok {
			set = make(map[int64]struct{})
			likesByCustomer[key.custID] = set
		}
		set[key.dishID] = struct{}{}
	}

	recommended := make(map[int64]struct{})
	for _, theirs := range likesByCustomer {
		shared := 0
		for dishID := range theirs {
			if _, ok := mine[dishID]; ok {
				shared++
			}
		}
		// Похожим считается клиент, разделяющий больше двух лайков.
		if shared <= 2 {
			continue
		}
		for dishID := range theirs {
			if _, ok := mine[dishID]; !ok {
				recommended[dishID] = struct{}{}
			}
		}
	}

	dishIDs := make([]int64, 0, len(recommended))
	for id := range recommended {
		dishIDs = append(dishIDs, id)
	}
	sort.Slice(dishIDs, func(i, j int) bool { return dishIDs[i] < dishIDs[j] })
	return dishIDs, nil
}

// orderTotalLocked считает стоимость заказа; вызывается под мьютексом.
func (a *analyticsInMemory) orderTotalLocked(orderID int64) float64 {
	var total float64
	for key, line := range a.store.lines {
		if key.orderID == orderID {
			total += float64(line.amount) * line.price
		}
	}
	return total
}

// argmaxDish выбирает блюдо с максимальным счётом, при ничьей — с меньшим id.
func argmaxDish(dishes map[int64]domain.Dish, scores map[int64]int64) int64 {
	var bestID int64
	var bestScore int64
	first := true
	for id := range dishes {
		score := scores[id]
		if first || score > bestScore || (score == bestScore && id < bestID) {
			bestID, bestScore = id, score
			first = false
		}
	}
	return bestID
}

var _ domain.Analytics = (*analyticsInMemory)(nil)
