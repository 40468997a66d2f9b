package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (err error) {
	start := time.Now()
	defer func() { r.store.observe("order_create", start, err) }()

	if err = order.Validate(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Колонка TIMESTAMP(0) отбрасывает доли секунды; усечение здесь
	// делает создание и чтение симметричными.
	if _, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO orders (order_id, placed_at)
		VALUES ($1, $2)
	`, order.ID, order.PlacedAt.Truncate(time.Second)); execErr != nil {
		err = mapInsertError("insert order", execErr)
		return err
	}

	return nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (order domain.Order, err error) {
	start := time.Now()
	defer func() { r.store.observe("order_get", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT order_id, placed_at
		FROM orders
		WHERE order_id = $1
	`, id).Scan(&order.ID, &order.PlacedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.Order{}, nil
		}
		err = fmt.Errorf("select order: %w", scanErr)
		return domain.Order{}, err
	}

	return order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("order_delete", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		DELETE FROM orders
		WHERE order_id = $1
	`, id)
	if execErr != nil {
		err = fmt.Errorf("delete order: %w", execErr)
		return err
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		err = fmt.Errorf("rows affected: %w", affErr)
		return err
	}
	if affected == 0 {
		err = domain.ErrNotExists
		return err
	}

	return nil
}

func (r *orderRepository) Place(ctx context.Context, custID, orderID int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("order_place", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Первичный ключ по order_id гарантирует не больше одного клиента на заказ:
	// повторная привязка — конфликт ключа независимо от клиента.
	if _, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO customer_orders (cust_id, order_id)
		VALUES ($1, $2)
	`, custID, orderID); execErr != nil {
		err = mapAssociationError("insert customer order", execErr)
		return err
	}

	return nil
}

func (r *orderRepository) Placer(ctx context.Context, orderID int64) (customer domain.Customer, err error) {
	start := time.Now()
	defer func() { r.store.observe("order_placer", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT c.cust_id, c.full_name, c.phone, c.address
		FROM customer_orders co
		JOIN customers c ON c.cust_id = co.cust_id
		WHERE co.order_id = $1
	`, orderID).Scan(&customer.ID, &customer.FullName, &customer.Phone, &customer.Address)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			// Анонимный или неизвестный заказ — нулевое значение.
			return domain.Customer{}, nil
		}
		err = fmt.Errorf("select order placer: %w", scanErr)
		return domain.Customer{}, err
	}

	return customer, nil
}

func (r *orderRepository) AddLine(ctx context.Context, orderID, dishID int64, amount int32) (err error) {
	start := time.Now()
	defer func() { r.store.observe("order_add_line", start, err) }()

	if amount <= 0 {
		err = fmt.Errorf("line amount must be positive: %w", domain.ErrBadParams)
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Цена копируется из текущей строки блюда в момент вставки и дальше
	// живёт своей жизнью. Подзапрос требует is_active, поэтому отсутствующее
	// и неактивное блюдо дают одинаково пустую вставку, а не NULL в price.
	res, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO order_lines (dish_id, order_id, amount, price)
		SELECT d.dish_id, $2, $3, d.price
		FROM dishes d
		WHERE d.dish_id = $1
		  AND d.is_active
	`, dishID, orderID, amount)
	if execErr != nil {
		err = mapAssociationError("insert order line", execErr)
		return err
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		err = fmt.Errorf("rows affected: %w", affErr)
		return err
	}
	if affected == 0 {
		err = domain.ErrNotExists
		return err
	}

	return nil
}

func (r *orderRepository) RemoveLine(ctx context.Context, orderID, dishID int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("order_remove_line", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		DELETE FROM order_lines
		WHERE order_id = $1
		  AND dish_id = $2
	`, orderID, dishID)
	if execErr != nil {
		err = fmt.Errorf("delete order line: %w", execErr)
		return err
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		err = fmt.Errorf("rows affected: %w", affErr)
		return err
	}
	if affected == 0 {
		err = domain.ErrNotExists
		return err
	}

	return nil
}

func (r *orderRepository) Lines(ctx context.Context, orderID int64) (lines []domain.OrderLine, err error) {
	start := time.Now()
	defer func() { r.store.observe("order_lines", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, queryErr := r.store.db.QueryContext(opCtx, `
		SELECT dish_id, amount, price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY dish_id ASC
	`, orderID)
	if queryErr != nil {
		err = fmt.Errorf("list order lines: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	lines = make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if scanErr := rows.Scan(&line.DishID, &line.Amount, &line.Price); scanErr != nil {
			err = fmt.Errorf("scan order line: %w", scanErr)
			return nil, err
		}
		lines = append(lines, line)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		err = fmt.Errorf("iterate order lines: %w", rowsErr)
		return nil, err
	}

	return lines, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
