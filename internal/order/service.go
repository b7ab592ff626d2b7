package order

import (
	"context"
	"fmt"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

// NotificationSink receives fire-and-forget status messages. Delivery
// failures are logged by the caller, never propagated.
type NotificationSink interface {
	Enqueue(ctx context.Context, userID int64, message string) error
}

type Service interface {
	Checkout(ctx context.Context, userID int64, info ShippingInfo) (*CheckoutResult, error)
	UpdateStatus(ctx context.Context, orderID int64, status Status, paymentStatus string) error
	UpdateShippingStatus(ctx context.Context, orderID int64, shipping ShippingStatus) error
	ConfirmPayment(ctx context.Context, orderID int64, transactionID string) error
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]AdminRow, error)
	Get(ctx context.Context, userID, orderID int64, isAdmin bool) (*Order, error)
}

type service struct {
	repo Repository
	sink NotificationSink
}

func NewService(repo Repository, sink NotificationSink) Service {
	return &service{repo: repo, sink: sink}
}

func (s *service) Checkout(ctx context.Context, userID int64, info ShippingInfo) (*CheckoutResult, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.Checkout(ctx, userID, info)
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, status Status, paymentStatus string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}

	userID, err := s.repo.UpdateStatus(ctx, orderID, status, paymentStatus)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Your order status has been updated to %s.", status)
	if status == StatusCompleted {
		message = "Thank you for ordering. Your order has been completed."
	}
	s.notify(ctx, userID, orderID, message)

	return nil
}

func (s *service) UpdateShippingStatus(ctx context.Context, orderID int64, shipping ShippingStatus) error {
	if !shipping.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidShippingStatus, shipping)
	}

	userID, err := s.repo.UpdateShippingStatus(ctx, orderID, shipping)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Your order has been %s.", shipping)
	if shipping == ShippingShipped {
		message = "Your order has been shipped."
	}
	s.notify(ctx, userID, orderID, message)

	return nil
}

func (s *service) ConfirmPayment(ctx context.Context, orderID int64, transactionID string) error {
	if orderID == 0 || transactionID == "" {
		return ErrMissingPaymentDetails
	}
	return s.repo.ConfirmPayment(ctx, orderID, transactionID)
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]AdminRow, error) {
	return s.repo.ListAll(ctx)
}

// Get returns the order detail; users only see their own orders.
func (s *service) Get(ctx context.Context, userID, orderID int64, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

// notify is best-effort: the status change already committed, so a failed
// insert is reported and swallowed.
func (s *service) notify(ctx context.Context, userID, orderID int64, message string) {
	if err := s.sink.Enqueue(ctx, userID, message); err != nil {
		logger.FromCtx(ctx).Error("failed to deliver order notification",
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
