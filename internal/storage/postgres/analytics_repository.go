package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type analyticsRepository struct {
	store *Store
}

// NewAnalyticsRepository создаёт PostgreSQL-реализацию аналитических запросов.
func NewAnalyticsRepository(store *Store) domain.Analytics {
	return &analyticsRepository{store: store}
}

func (r *analyticsRepository) OrderTotalPrice(ctx context.Context, orderID int64) (total float64, err error) {
	start := time.Now()
	defer func() { r.store.observe("order_total_price", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Представление строится LEFT JOIN-ом, поэтому заказ без позиций даёт 0;
	// внешний COALESCE покрывает и неизвестный заказ.
	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT COALESCE(
			(SELECT total FROM order_total_price WHERE order_id = $1),
			0)
	`, orderID).Scan(&total)
	if scanErr != nil {
		err = fmt.Errorf("select order total price: %w", scanErr)
		return 0, err
	}

	return total, nil
}

func (r *analyticsRepository) MaxCustomerSpend(ctx context.Context, custID int64) (maxSpend float64, err error) {
	start := time.Now()
	defer func() { r.store.observe("max_customer_spend", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT COALESCE(MAX(t.total), 0)
		FROM customer_orders co
		JOIN order_total_price t ON t.order_id = co.order_id
		WHERE co.cust_id = $1
	`, custID).Scan(&maxSpend)
	if scanErr != nil {
		err = fmt.Errorf("select max customer spend: %w", scanErr)
		return 0, err
	}

	return maxSpend, nil
}

func (r *analyticsRepository) MostExpensiveAnonymousOrder(ctx context.Context) (order domain.Order, err error) {
	start := time.Now()
	defer func() { r.store.observe("most_expensive_anonymous_order", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Анонимный заказ с нулевой суммой тоже участвует: пустота позиций
	// не выталкивает его из представления.
	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT o.order_id, o.placed_at
		FROM orders o
		JOIN order_total_price t ON t.order_id = o.order_id
		WHERE NOT EXISTS (
			SELECT 1 FROM customer_orders co WHERE co.order_id = o.order_id
		)
		ORDER BY t.total DESC, o.order_id ASC
		LIMIT 1
	`).Scan(&order.ID, &order.PlacedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.Order{}, nil
		}
		err = fmt.Errorf("select most expensive anonymous order: %w", scanErr)
		return domain.Order{}, err
	}

	return order, nil
}

func (r *analyticsRepository) MostLikedDishEqualsMostPurchased(ctx context.Context) (equal bool, err error) {
	start := time.Now()
	defer func() { r.store.observe("most_liked_equals_most_purchased", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// LEFT JOIN-ы оставляют в гонке блюда без лайков и без покупок:
	// нулевой счёт тоже может победить, ничья решается меньшим id.
	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT liked.dish_id = purchased.dish_id
		FROM (
			SELECT d.dish_id
			FROM dishes d
			LEFT JOIN likes l ON l.dish_id = d.dish_id
			GROUP BY d.dish_id
			ORDER BY COUNT(l.cust_id) DESC, d.dish_id ASC
			LIMIT 1
		) liked,
		(
			SELECT d.dish_id
			FROM dishes d
			LEFT JOIN order_lines ol ON ol.dish_id = d.dish_id
			GROUP BY d.dish_id
			ORDER BY COALESCE(SUM(ol.amount), 0) DESC, d.dish_id ASC
			LIMIT 1
		) purchased
	`).Scan(&equal)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			// Без блюд нет ни самого залайканного, ни самого покупаемого.
			return false, nil
		}
		err = fmt.Errorf("select most liked vs most purchased: %w", scanErr)
		return false, err
	}

	return equal, nil
}

func (r *analyticsRepository) TopFiveDishCustomers(ctx context.Context) (custIDs []int64, err error) {
	start := time.Now()
	defer func() { r.store.observe("top_five_dish_customers", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Заказ должен состоять ровно из пятёрки лидеров: пять позиций внутри
	// набора и ни одной за его пределами.
	rows, queryErr := r.store.db.QueryContext(opCtx, `
		WITH top_dishes AS (
			SELECT d.dish_id
			FROM dishes d
			LEFT JOIN likes l ON l.dish_id = d.dish_id
			GROUP BY d.dish_id
			ORDER BY COUNT(l.cust_id) DESC, d.dish_id ASC
			LIMIT 5
		)
		SELECT DISTINCT co.cust_id
		FROM customer_orders co
		WHERE (
			SELECT COUNT(*)
			FROM order_lines ol
			WHERE ol.order_id = co.order_id
			  AND ol.dish_id IN (SELECT dish_id FROM top_dishes)
		) = 5
		  AND (
			SELECT COUNT(*)
			FROM order_lines ol
			WHERE ol.order_id = co.order_id
		) = 5
		ORDER BY co.cust_id ASC
	`)
	if queryErr != nil {
		err = fmt.Errorf("select top five dish customers: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *analyticsRepository) NonWorthPriceIncreases(ctx context.Context) (dishIDs []int64, err error) {
	start := time.Now()
	defer func() { r.store.observe("non_worth_price_increases", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Позиции группируются по ценовой точке, в которой были зафиксированы.
	// Сравниваются только блюда, у которых есть продажи по текущей цене.
	rows, queryErr := r.store.db.QueryContext(opCtx, `
		WITH price_points AS (
			SELECT dish_id, price, AVG(amount * price) AS avg_profit
			FROM order_lines
			GROUP BY dish_id, price
		)
		SELECT d.dish_id
		FROM dishes d
		JOIN price_points cur
			ON cur.dish_id = d.dish_id
			AND cur.price = d.price
		WHERE d.is_active
		  AND EXISTS (
			SELECT 1
			FROM price_points hist
			WHERE hist.dish_id = d.dish_id
			  AND hist.price <> d.price
			  AND cur.avg_profit < hist.avg_profit
		)
		ORDER BY d.dish_id ASC
	`)
	if queryErr != nil {
		err = fmt.Errorf("select non worth price increases: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *analyticsRepository) TotalProfitPerMonth(ctx context.Context, year int) (months []domain.MonthProfit, err error) {
	start := time.Now()
	defer func() { r.store.observe("total_profit_per_month", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, queryErr := r.store.db.QueryContext(opCtx, `
		SELECT m.month,
		       COALESCE(SUM(p.profit), 0) AS profit
		FROM generate_series(12, 1, -1) AS m(month)
		LEFT JOIN orders o
			ON EXTRACT(MONTH FROM o.placed_at) = m.month
			AND EXTRACT(YEAR FROM o.placed_at) = $1
		LEFT JOIN order_line_profit p ON p.order_id = o.order_id
		GROUP BY m.month
		ORDER BY m.month DESC
	`, year)
	if queryErr != nil {
		err = fmt.Errorf("select total profit per month: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	months = make([]domain.MonthProfit, 0, 12)
	for rows.Next() {
		var mp domain.MonthProfit
		if scanErr := rows.Scan(&mp.Month, &mp.Profit); scanErr != nil {
			err = fmt.Errorf("scan month profit: %w", scanErr)
			return nil, err
		}
		months = append(months, mp)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		err = fmt.Errorf("iterate month profits: %w", rowsErr)
		return nil, err
	}

	return months, nil
}

func (r *analyticsRepository) DishRecommendations(ctx context.Context, custID int64) (dishIDs []int64, err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_recommendations", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, queryErr := r.store.db.QueryContext(opCtx, `
		WITH similar AS (
			SELECT other.cust_id
			FROM likes mine
			JOIN likes other
				ON other.dish_id = mine.dish_id
				AND other.cust_id <> $1
			WHERE mine.cust_id = $1
			GROUP BY other.cust_id
			HAVING COUNT(*) > 2
		)
		SELECT DISTINCT l.dish_id
		FROM likes l
		JOIN similar s ON s.cust_id = l.cust_id
		WHERE NOT EXISTS (
			SELECT 1
			FROM likes mine
			WHERE mine.cust_id = $1
			  AND mine.dish_id = l.dish_id
		)
		ORDER BY l.dish_id ASC
	`, custID)
	if queryErr != nil {
		err = fmt.Errorf("select dish recommendations: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}

var _ domain.Analytics = (*analyticsRepository)(nil)
