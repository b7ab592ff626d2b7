package product

import (
	"context"
	"database/sql"
	"errors"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params SaveParams) (int64, error)
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, id int64, params SaveParams) error
	Delete(ctx context.Context, id int64) error
	TopSelling(ctx context.Context) ([]TopSeller, error)
	AdjustStock(ctx context.Context, id int64, delta int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, model, category, stock_quantity, price,
	description, dimensions, weight, manufacturer, warranty_period,
	total_quantity_sold, created_at, updated_at
`

func scanProduct(row interface{ Scan(...any) error }, p *Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Model, &p.Category, &p.StockQuantity, &p.Price,
		&p.Description, &p.Dimensions, &p.Weight, &p.Manufacturer, &p.WarrantyPeriod,
		&p.TotalQuantitySold, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *repository) Create(ctx context.Context, params SaveParams) (int64, error) {
	log := logger.FromCtx(ctx)

	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM products WHERE name = $1 AND model = $2 AND category = $3
		)
	`, params.Name, params.Model, params.Category).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicateProduct
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO products
			(name, model, category, stock_quantity, price,
			 description, dimensions, weight, manufacturer, warranty_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, params.Name, params.Model, params.Category, params.StockQuantity, params.Price,
		params.Description, params.Dimensions, params.Weight, params.Manufacturer, params.WarrantyPeriod).
		Scan(&id)

	if err != nil {
		log.Error("db: failed to insert product", zap.String("name", params.Name), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id), &p)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id int64, params SaveParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, model = $2, category = $3, stock_quantity = $4, price = $5,
		    description = $6, dimensions = $7, weight = $8, manufacturer = $9,
		    warranty_period = $10, updated_at = NOW()
		WHERE id = $11
	`, params.Name, params.Model, params.Category, params.StockQuantity, params.Price,
		params.Description, params.Dimensions, params.Weight, params.Manufacturer,
		params.WarrantyPeriod, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes the product together with any cart lines that still
// reference it. Order lines are kept: they are append-only history.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE product_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return tx.Commit()
}

func (r *repository) TopSelling(ctx context.Context) ([]TopSeller, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, total_quantity_sold
		FROM products
		ORDER BY total_quantity_sold DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []TopSeller
	for rows.Next() {
		var t TopSeller
		if err := rows.Scan(&t.ID, &t.Name, &t.TotalQuantitySold); err != nil {
			return nil, err
		}
		t.Rating = RatingFor(t.TotalQuantitySold)
		top = append(top, t)
	}
	return top, rows.Err()
}

// AdjustStock applies delta to the stock quantity, refusing any change that
// would drive it negative. The condition and the write are one statement so
// concurrent adjustments cannot interleave past the check.
func (r *repository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity + $1 >= 0
	`, delta, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrProductNotFound
		}
		return ErrStockConflict
	}
	return nil
}
