package analytics

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	ProductRevenues(ctx context.Context) ([]ProductRevenue, error)
	Products(ctx context.Context) ([]FSNItem, error)
	WeeklySales(ctx context.Context, from, to time.Time) ([]WeeklySalesRow, error)
	SalesTotals(ctx context.Context, from, to time.Time) ([]SalesTotalRow, error)
	Report(ctx context.Context) ([]ReportRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ProductRevenues(ctx context.Context) ([]ProductRevenue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.price, p.stock_quantity, p.total_quantity_sold,
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_sales
		FROM products p
		LEFT JOIN order_items oi ON p.id = oi.product_id
		GROUP BY p.id
		ORDER BY total_sales DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ProductRevenue
	for rows.Next() {
		var pr ProductRevenue
		if err := rows.Scan(&pr.ProductID, &pr.Name, &pr.Price, &pr.Stock,
			&pr.TotalSold, &pr.Revenue); err != nil {
			return nil, err
		}
		result = append(result, pr)
	}
	return result, rows.Err()
}

func (r *repository) Products(ctx context.Context) ([]FSNItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, model, total_quantity_sold
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FSNItem
	for rows.Next() {
		var item FSNItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Model, &item.TotalSold); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) WeeklySales(ctx context.Context, from, to time.Time) ([]WeeklySalesRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, SUM(oi.quantity) AS total_quantity_sold,
		       EXTRACT(ISOYEAR FROM o.created_at)::int AS year,
		       EXTRACT(WEEK FROM o.created_at)::int AS week
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at BETWEEN $1 AND $2
		GROUP BY p.id, p.name, year, week
		ORDER BY p.id, year, week
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []WeeklySalesRow
	for rows.Next() {
		var row WeeklySalesRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Quantity, &row.Year, &row.Week); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *repository) SalesTotals(ctx context.Context, from, to time.Time) ([]SalesTotalRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, SUM(oi.quantity) AS total_quantity_sold, p.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at BETWEEN $1 AND $2
		GROUP BY p.id, p.name, p.price
		ORDER BY p.id
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SalesTotalRow
	for rows.Next() {
		var row SalesTotalRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Quantity, &row.Price); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *repository) Report(ctx context.Context) ([]ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.category,
		       COALESCE(SUM(oi.quantity), 0) AS total_quantity_sold,
		       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue
		FROM products p
		LEFT JOIN order_items oi ON p.id = oi.product_id
		GROUP BY p.id, p.name, p.category
		ORDER BY total_revenue DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []ReportRow
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Category,
			&row.TotalSold, &row.TotalRevenue); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
