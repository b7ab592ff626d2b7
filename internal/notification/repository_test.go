package notification

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO notifications \(user_id, message, read_status\)`).
		WithArgs(int64(7), "Your order has been shipped.").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Insert(ctx, 7, "Your order has been shipped.")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "message", "read_status", "created_at"}).
		AddRow(int64(2), int64(7), "Your order has been completed.", StatusUnread, now).
		AddRow(int64(1), int64(7), "Your order has been shipped.", StatusRead, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, user_id, message, read_status, created_at`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	notifications, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "Your order has been completed.", notifications[0].Message)
	assert.Equal(t, StatusUnread, notifications[0].ReadStatus)
	assert.Equal(t, StatusRead, notifications[1].ReadStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE notifications SET read_status = 'read' WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.MarkRead(context.Background(), 4)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec(`UPDATE notifications SET read_status = 'read' WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.MarkRead(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
