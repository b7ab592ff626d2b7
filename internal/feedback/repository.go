package feedback

import (
	"context"
	"database/sql"
)

type Repository interface {
	Insert(ctx context.Context, userID int64, message string, rating int) error
	ListAll(ctx context.Context) ([]Feedback, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, userID int64, message string, rating int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedback (user_id, message, rating, created_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, message, rating)
	return err
}

func (r *repository) ListAll(ctx context.Context) ([]Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.message, f.rating, f.created_at, u.name
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		ORDER BY f.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Message, &f.Rating, &f.CreatedAt, &f.UserName); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}
