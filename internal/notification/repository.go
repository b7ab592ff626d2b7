package notification

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Repository interface {
	Insert(ctx context.Context, userID int64, message string) error
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, userID int64, message string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (user_id, message, read_status)
		VALUES ($1, $2, 'unread')
	`, userID, message)
	return err
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, message, read_status, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.ReadStatus, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *repository) MarkRead(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read_status = 'read' WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
