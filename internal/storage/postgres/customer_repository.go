package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type customerRepository struct {
	store *Store
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{store: store}
}

func (r *customerRepository) Create(ctx context.Context, customer domain.Customer) (err error) {
	start := time.Now()
	defer func() { r.store.observe("customer_create", start, err) }()

	if err = customer.Validate(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO customers (cust_id, full_name, phone, address)
		VALUES ($1, $2, $3, $4)
	`, customer.ID, customer.FullName, customer.Phone, customer.Address); execErr != nil {
		err = mapInsertError("insert customer", execErr)
		return err
	}

	return nil
}

func (r *customerRepository) Get(ctx context.Context, id int64) (customer domain.Customer, err error) {
	start := time.Now()
	defer func() { r.store.observe("customer_get", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	scanErr := r.store.db.QueryRowContext(opCtx, `
		SELECT cust_id, full_name, phone, address
		FROM customers
		WHERE cust_id = $1
	`, id).Scan(&customer.ID, &customer.FullName, &customer.Phone, &customer.Address)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			// Отсутствие клиента — не ошибка: возвращаем нулевое значение.
			return domain.Customer{}, nil
		}
		err = fmt.Errorf("select customer: %w", scanErr)
		return domain.Customer{}, err
	}

	return customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("customer_delete", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		DELETE FROM customers
		WHERE cust_id = $1
	`, id)
	if execErr != nil {
		err = fmt.Errorf("delete customer: %w", execErr)
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

var _ domain.CustomerRepository = (*customerRepository)(nil)
