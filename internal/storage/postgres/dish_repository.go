package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type dishRepository struct {
	store *Store
}

// NewDishRepository создаёт PostgreSQL-реализацию DishRepository.
func NewDishRepository(store *Store) domain.DishRepository {
	return &dishRepository{store: store}
}

func (r *dishRepository) Create(ctx context.Context, dish domain.Dish) (err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_create", start, err) }()

	if err = dish.Validate(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO dishes (dish_id, name, price, is_active)
		VALUES ($1, $2, $3, $4)
	`, dish.ID, dish.Name, dish.Price, dish.Active); execErr != nil {
		err = mapInsertError("insert dish", execErr)
		return err
	}

	return nil
}

func (r *dishRepository) Get(ctx context.Context, id int64) (dish domain.Dish, err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_get", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT dish_id, name, price, is_active
		FROM dishes
		WHERE dish_id = $1
	`, id).Scan(&dish.ID, &dish.Name, &dish.Price, &dish.Active)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return domain.Dish{}, nil
		}
		err = fmt.Errorf("select dish: %w", scanErr)
		return domain.Dish{}, err
	}

	return dish, nil
}

func (r *dishRepository) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_delete", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		DELETE FROM dishes
		WHERE dish_id = $1
	`, id)
	if execErr != nil {
		err = fmt.Errorf("delete dish: %w", execErr)
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

func (r *dishRepository) UpdatePrice(ctx context.Context, id int64, price float64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_update_price", start, err) }()

	if price <= 0 {
		err = fmt.Errorf("dish price must be positive: %w", domain.ErrBadParams)
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Условие is_active в WHERE схлопывает «блюда нет» и «блюдо неактивно»
	// в один результат: ноль затронутых строк.
	res, execErr := r.store.db.ExecContext(opCtx, `
		UPDATE dishes
		SET price = $2
		WHERE dish_id = $1
		  AND is_active
	`, id, price)
	if execErr != nil {
		if isCheckViolation(execErr) {
			err = domain.ErrBadParams
			return err
		}
		err = fmt.Errorf("update dish price: %w", execErr)
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

func (r *dishRepository) UpdateActiveStatus(ctx context.Context, id int64, active bool) (err error) {
	start := time.Now()
	defer func() { r.store.observe("dish_update_active", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		UPDATE dishes
		SET is_active = $2
		WHERE dish_id = $1
	`, id, active)
	if execErr != nil {
		err = fmt.Errorf("update dish active status: %w", execErr)
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

var _ domain.DishRepository = (*dishRepository)(nil)
