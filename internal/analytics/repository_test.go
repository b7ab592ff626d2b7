package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ProductRevenues(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "price", "stock_quantity", "total_quantity_sold", "total_sales"}).
			AddRow(1, "Helmet", 150.0, 5, 12, 1800.0).
			AddRow(2, "Gloves", 40.0, 20, 3, 120.0)

		mock.ExpectQuery("SELECT p.id, p.name, p.price").WillReturnRows(rows)

		res, err := repo.ProductRevenues(context.Background())
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "Helmet", res[0].Name)
		assert.Equal(t, 1800.0, res[0].Revenue)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id, p.name, p.price").WillReturnError(errors.New("db error"))
		_, err := repo.ProductRevenues(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_WeeklySales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	from := time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "total_quantity_sold", "year", "week"}).
		AddRow(1, "Helmet", 10, 2024, 21).
		AddRow(1, "Helmet", 20, 2024, 22)

	mock.ExpectQuery("EXTRACT\\(ISOYEAR FROM o.created_at\\)").
		WithArgs(from, to).
		WillReturnRows(rows)

	res, err := repo.WeeklySales(context.Background(), from, to)
	assert.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 21, res[0].Week)
	assert.Equal(t, int64(20), res[1].Quantity)
}

func TestRepository_Report(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "total_quantity_sold", "total_revenue"}).
		AddRow(1, "Helmet", "Helmet", 12, 1800.0)

	mock.ExpectQuery("SELECT p.id, p.name, p.category").WillReturnRows(rows)

	res, err := repo.Report(context.Background())
	assert.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 1800.0, res[0].TotalRevenue)
}
