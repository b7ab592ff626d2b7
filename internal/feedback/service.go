package feedback

import (
	"context"
	"errors"
)

var ErrInvalidFeedback = errors.New("feedback message and a rating from 1 to 5 are required")

type Service interface {
	Submit(ctx context.Context, userID int64, message string, rating int) error
	ListAll(ctx context.Context) ([]Feedback, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, userID int64, message string, rating int) error {
	if message == "" || rating < 1 || rating > 5 {
		return ErrInvalidFeedback
	}
	return s.repo.Insert(ctx, userID, message, rating)
}

func (s *service) ListAll(ctx context.Context) ([]Feedback, error) {
	return s.repo.ListAll(ctx)
}
