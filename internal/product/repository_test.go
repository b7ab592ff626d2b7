package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "model", "category", "stock_quantity", "price",
		"description", "dimensions", "weight", "manufacturer", "warranty_period",
		"total_quantity_sold", "created_at", "updated_at",
	}).AddRow(1, "Helmet X", "HX-1", "Helmet", 5, 150.0,
		nil, nil, nil, nil, nil, 12, now, now)
}

func TestRepository_Create(t *testing.T) {
	params := SaveParams{Name: "Helmet X", Model: "HX-1", Category: "Helmet", StockQuantity: 5, Price: 150}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("Helmet X", "HX-1", "Helmet").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO products").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		id, err := repo.Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("Duplicate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("Helmet X", "HX-1", "Helmet").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err = repo.Create(context.Background(), params)
		assert.ErrorIs(t, err, ErrDuplicateProduct)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(int64(1)).
			WillReturnRows(productRows(t))

		p, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Helmet X", p.Name)
		assert.Equal(t, int64(12), p.TotalQuantitySold)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(context.Background(), 2)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("ClearsCartLinesFirst", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM products").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM products").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrProductNotFound)
	})
}

func TestRepository_AdjustStock(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec("UPDATE products").
			WithArgs(int64(-3), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AdjustStock(context.Background(), 1, -3))
	})

	t.Run("WouldGoNegative", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec("UPDATE products").
			WithArgs(int64(-10), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		assert.ErrorIs(t, repo.AdjustStock(context.Background(), 1, -10), ErrStockConflict)
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec("UPDATE products").
			WithArgs(int64(-1), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		assert.ErrorIs(t, repo.AdjustStock(context.Background(), 9, -1), ErrProductNotFound)
	})
}

func TestRepository_TopSelling(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id, name, total_quantity_sold").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total_quantity_sold"}).
			AddRow(1, "Helmet X", 12).
			AddRow(2, "Gloves", 3))

	top, err := repo.TopSelling(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 5, top[0].Rating)
	assert.Equal(t, 2, top[1].Rating)
}
