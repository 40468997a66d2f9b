package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/bistro/internal/domain"
)

type likeRepository struct {
	store *Store
}

// NewLikeRepository создаёт PostgreSQL-реализацию LikeRepository.
func NewLikeRepository(store *Store) domain.LikeRepository {
	return &likeRepository{store: store}
}

func (r *likeRepository) Like(ctx context.Context, custID, dishID int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("like", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, execErr := r.store.db.ExecContext(opCtx, `
		INSERT INTO likes (cust_id, dish_id)
		VALUES ($1, $2)
	`, custID, dishID); execErr != nil {
		err = mapAssociationError("insert like", execErr)
		return err
	}

	return nil
}

func (r *likeRepository) Unlike(ctx context.Context, custID, dishID int64) (err error) {
	start := time.Now()
	defer func() { r.store.observe("unlike", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, execErr := r.store.db.ExecContext(opCtx, `
		DELETE FROM likes
		WHERE cust_id = $1
		  AND dish_id = $2
	`, custID, dishID)
	if execErr != nil {
		err = fmt.Errorf("delete like: %w", execErr)
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

func (r *likeRepository) LikedBy(ctx context.Context, custID int64) (dishes []domain.Dish, err error) {
	start := time.Now()
	defer func() { r.store.observe("liked_by", start, err) }()

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, queryErr := r.store.db.QueryContext(opCtx, `
		SELECT d.dish_id, d.name, d.price, d.is_active
		FROM dishes d
		JOIN likes l ON l.dish_id = d.dish_id
		WHERE l.cust_id = $1
		ORDER BY d.dish_id ASC
	`, custID)
	if queryErr != nil {
		err = fmt.Errorf("list liked dishes: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	dishes = make([]domain.Dish, 0)
	for rows.Next() {
		var dish domain.Dish
		if scanErr := rows.Scan(&dish.ID, &dish.Name, &dish.Price, &dish.Active); scanErr != nil {
			err = fmt.Errorf("scan liked dish: %w", scanErr)
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		err = fmt.Errorf("iterate liked dishes: %w", rowsErr)
		return nil, err
	}

	return dishes, nil
}

var _ domain.LikeRepository = (*likeRepository)(nil)
