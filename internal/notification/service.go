package notification

import "context"

// Service is the notification sink for the rest of the system, and serves
// the user-facing listing. It satisfies order.NotificationSink.
type Service interface {
	Enqueue(ctx context.Context, userID int64, message string) error
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Enqueue(ctx context.Context, userID int64, message string) error {
	return s.repo.Insert(ctx, userID, message)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}
