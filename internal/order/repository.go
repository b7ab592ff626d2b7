package order

import (
	"context"
	"database/sql"
	"errors"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Checkout(ctx context.Context, userID int64, info ShippingInfo) (*CheckoutResult, error)
	UpdateStatus(ctx context.Context, orderID int64, status Status, paymentStatus string) (int64, error)
	UpdateShippingStatus(ctx context.Context, orderID int64, shipping ShippingStatus) (int64, error)
	ConfirmPayment(ctx context.Context, orderID int64, transactionID string) error
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]AdminRow, error)
	GetDetail(ctx context.Context, orderID int64) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type checkoutLine struct {
	productID int64
	quantity  int64
	unitPrice float64
	stock     int64
}

// Checkout converts the user's cart into an order in one transaction:
// lock cart lines with their products, validate stock, freeze unit prices,
// decrement stock, clear the cart. Any failure rolls the whole thing back.
func (r *repository) Checkout(ctx context.Context, userID int64, info ShippingInfo) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Checkout"),
		zap.Int64("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cartID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	// Ordered by product id so concurrent checkouts lock rows in the same
	// sequence and cannot deadlock.
	rows, err := tx.QueryContext(ctx, `
		SELECT ci.product_id, ci.quantity, p.price, p.stock_quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.product_id
		FOR UPDATE OF p
	`, cartID)
	if err != nil {
		return nil, err
	}

	var lines []checkoutLine
	for rows.Next() {
		var l checkoutLine
		if err := rows.Scan(&l.productID, &l.quantity, &l.unitPrice, &l.stock); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var total float64
	for _, l := range lines {
		if l.quantity > l.stock {
			log.Warn("insufficient stock at checkout",
				zap.Int64("product_id", l.productID),
				zap.Int64("requested", l.quantity),
				zap.Int64("stock", l.stock),
			)
			return nil, ErrInsufficientStock
		}
		total += float64(l.quantity) * l.unitPrice
	}

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders
			(user_id, total_price, status, payment_status, shipping_status,
			 payment_method, shipping_address, city, postal_code, phone_number)
		VALUES ($1, $2, 'pending', 'pending', 'not yet', $3, $4, $5, $6, $7)
		RETURNING id
	`, userID, total, info.PaymentMethod, info.Address, info.City,
		info.PostalCode, info.PhoneNumber).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, orderID, l.productID, l.quantity, l.unitPrice); err != nil {
			return nil, err
		}

		// stock_quantity must never go negative, even while the rows are locked.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock_quantity = stock_quantity - $1,
			    total_quantity_sold = total_quantity_sold + $1,
			    updated_at = NOW()
			WHERE id = $2 AND stock_quantity >= $1
		`, l.quantity, l.productID)
		if err != nil {
			return nil, err
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return nil, ErrInsufficientStock
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.Float64("total_price", total),
		zap.Int("line_count", len(lines)),
	)

	return &CheckoutResult{OrderID: orderID, TotalPrice: total}, nil
}

// UpdateStatus moves the order through its state machine. Setting completed
// forces payment_status to completed in the same transaction. Returns the
// owning user id for the notification side effect.
func (r *repository) UpdateStatus(ctx context.Context, orderID int64, status Status, paymentStatus string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current Status
	var userID int64
	err = tx.QueryRowContext(ctx,
		`SELECT status, user_id FROM orders WHERE id = $1 FOR UPDATE`,
		orderID).Scan(&current, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrOrderNotFound
	}
	if err != nil {
		return 0, err
	}

	if !CanTransition(current, status) {
		return 0, ErrInvalidTransition
	}

	if status == StatusCompleted {
		paymentStatus = PaymentCompleted
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3
	`, status, paymentStatus, orderID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *repository) UpdateShippingStatus(ctx context.Context, orderID int64, shipping ShippingStatus) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders SET shipping_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING user_id
	`, shipping, orderID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrOrderNotFound
	}
	return userID, err
}

// ConfirmPayment records the gateway success callback.
func (r *repository) ConfirmPayment(ctx context.Context, orderID int64, transactionID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = 'completed', transaction_id = $1, updated_at = NOW()
		WHERE id = $2
	`, transactionID, orderID)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

const orderColumns = `
	o.id, o.user_id, o.total_price, o.status, o.shipping_status,
	COALESCE(o.payment_status, 'pending'),
	COALESCE(o.payment_method, 'Not Specified'),
	o.transaction_id,
	o.shipping_address, o.city, o.postal_code, o.phone_number,
	o.created_at, o.updated_at
`

func scanOrder(row interface{ Scan(...any) error }, o *Order) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &o.ShippingStatus,
		&o.PaymentStatus, &o.PaymentMethod, &o.TransactionID,
		&o.ShippingAddress, &o.City, &o.PostalCode, &o.PhoneNumber,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) ListAll(ctx context.Context) ([]AdminRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []AdminRow
	for rows.Next() {
		var row AdminRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.TotalPrice, &row.Status, &row.ShippingStatus,
			&row.PaymentStatus, &row.PaymentMethod, &row.TransactionID,
			&row.ShippingAddress, &row.City, &row.PostalCode, &row.PhoneNumber,
			&row.CreatedAt, &row.UpdatedAt, &row.UserEmail,
		); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}
	return orders, rows.Err()
}

func (r *repository) GetDetail(ctx context.Context, orderID int64) (*Order, error) {
	var o Order
	err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, orderID), &o)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.product_id, oi.quantity, oi.unit_price, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity,
			&l.UnitPriceAtPurchase, &l.ProductName); err != nil {
			return nil, err
		}
		l.OrderID = orderID
		o.Lines = append(o.Lines, l)
	}
	return &o, rows.Err()
}
