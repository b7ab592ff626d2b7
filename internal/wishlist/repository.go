package wishlist

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrEntryNotFound     = errors.New("wishlist entry not found")
)

type Repository interface {
	Add(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]Row, error)
	Remove(ctx context.Context, userID, productID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, userID, productID int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM wishlist WHERE user_id = $1 AND product_id = $2)`,
		userID, productID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInWishlist
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO wishlist (user_id, product_id) VALUES ($1, $2)`,
		userID, productID)
	return err
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, p.id, p.name, p.model, p.price, p.stock_quantity,
		       p.category, p.total_quantity_sold
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		WHERE w.user_id = $1
		ORDER BY w.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.WishlistID, &row.ProductID, &row.Name, &row.Model,
			&row.Price, &row.Stock, &row.Category, &row.TotalSold); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *repository) Remove(ctx context.Context, userID, productID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
