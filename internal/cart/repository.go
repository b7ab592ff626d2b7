package cart

import (
	"context"
	"database/sql"
	"errors"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

// Repository persists cart lines. Stock is reserved the moment a line is
// added or grown: every mutation adjusts products.stock_quantity inside the
// same transaction, and removal gives the reservation back.
type Repository interface {
	AddItem(ctx context.Context, params AddParams) error
	UpdateQuantity(ctx context.Context, params UpdateParams) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	GetRows(ctx context.Context, userID int64) ([]Row, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AddItem(ctx context.Context, params AddParams) error {
	log := logger.FromCtx(ctx).With(
		zap.Int64("user_id", params.UserID),
		zap.Int64("product_id", params.ProductID),
		zap.Int64("quantity", params.Quantity),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the product row for the whole reservation.
	var stock int64
	err = tx.QueryRowContext(ctx,
		`SELECT stock_quantity FROM products WHERE id = $1 FOR UPDATE`,
		params.ProductID).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	if params.Quantity > stock {
		return ErrInsufficientStock
	}

	cartID, err := ensureCart(ctx, tx, params.UserID)
	if err != nil {
		return err
	}

	var current int64
	err = tx.QueryRowContext(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, params.ProductID).Scan(&current)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, `
			INSERT INTO cart_items (cart_id, product_id, quantity)
			VALUES ($1, $2, $3)
		`, cartID, params.ProductID, params.Quantity)
	case err == nil:
		_, err = tx.ExecContext(ctx, `
			UPDATE cart_items SET quantity = $1, updated_at = NOW()
			WHERE cart_id = $2 AND product_id = $3
		`, current+params.Quantity, cartID, params.ProductID)
	}
	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return err
	}

	if err := reserveStock(ctx, tx, params.ProductID, params.Quantity); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("product reserved in cart")
	return nil
}

func (r *repository) UpdateQuantity(ctx context.Context, params UpdateParams) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lineID, current int64
	err = tx.QueryRowContext(ctx, `
		SELECT ci.id, ci.quantity
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		WHERE c.user_id = $1 AND ci.product_id = $2
		FOR UPDATE OF ci
	`, params.UserID, params.ProductID).Scan(&lineID, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCartLineNotFound
	}
	if err != nil {
		return err
	}

	// Only the difference moves between line and stock.
	delta := params.Quantity - current
	if err := reserveStock(ctx, tx, params.ProductID, delta); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2`,
		params.Quantity, lineID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) RemoveItem(ctx context.Context, userID, productID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lineID, quantity int64
	err = tx.QueryRowContext(ctx, `
		SELECT ci.id, ci.quantity
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		WHERE c.user_id = $1 AND ci.product_id = $2
		FOR UPDATE OF ci
	`, userID, productID).Scan(&lineID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCartLineNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1`, lineID); err != nil {
		return err
	}

	// Give the reservation back.
	if _, err := tx.ExecContext(ctx, `
		UPDATE products SET stock_quantity = stock_quantity + $1, updated_at = NOW()
		WHERE id = $2
	`, quantity, productID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) GetRows(ctx context.Context, userID int64) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.id, ci.product_id, ci.quantity,
		       p.name, p.price, p.category, p.total_quantity_sold
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		JOIN products p ON ci.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY ci.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.LineID, &row.ProductID, &row.Quantity,
			&row.Name, &row.Price, &row.Category, &row.TotalSold); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// ensureCart returns the user's cart id, creating the cart lazily.
func ensureCart(ctx context.Context, tx *sql.Tx, userID int64) (int64, error) {
	var cartID int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO carts (user_id) VALUES ($1) RETURNING id`, userID).Scan(&cartID)
	}
	return cartID, err
}

// reserveStock decrements stock by delta, refusing to go below zero. A
// negative delta releases stock and always passes the condition.
func reserveStock(ctx context.Context, tx *sql.Tx, productID, delta int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`, delta, productID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
