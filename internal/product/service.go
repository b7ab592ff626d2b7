package product

import (
	"context"
	"fmt"

	"gearmart-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params SaveParams) (int64, error)
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, id int64, params SaveParams) error
	Delete(ctx context.Context, id int64) error
	TopSelling(ctx context.Context) ([]TopSeller, error)
	AdjustStock(ctx context.Context, id int64, delta int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params SaveParams) (int64, error) {
	if err := validate(params); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, params)
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int64("product_id", id),
		zap.String("name", params.Name),
		zap.String("category", params.Category),
	)
	return id, nil
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, params SaveParams) error {
	if err := validate(params); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) TopSelling(ctx context.Context) ([]TopSeller, error) {
	return s.repo.TopSelling(ctx)
}

func (s *service) AdjustStock(ctx context.Context, id int64, delta int64) error {
	return s.repo.AdjustStock(ctx, id, delta)
}

func validate(params SaveParams) error {
	if params.Name == "" || params.Category == "" {
		return fmt.Errorf("%w: name and category are required", ErrInvalidInput)
	}
	if params.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if params.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity must not be negative", ErrInvalidInput)
	}
	return nil
}
