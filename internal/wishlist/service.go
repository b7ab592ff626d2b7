package wishlist

import (
	"context"

	"gearmart-be/internal/pricing"
)

type Service interface {
	Add(ctx context.Context, userID, productID int64) error
	List(ctx context.Context, userID int64) ([]ItemView, error)
	Remove(ctx context.Context, userID, productID int64) error
}

type service struct {
	repo   Repository
	policy *pricing.Policy
}

func NewService(repo Repository, policy *pricing.Policy) Service {
	return &service{repo: repo, policy: policy}
}

func (s *service) Add(ctx context.Context, userID, productID int64) error {
	return s.repo.Add(ctx, userID, productID)
}

func (s *service) List(ctx context.Context, userID int64) ([]ItemView, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]ItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, ItemView{
			WishlistID:      row.WishlistID,
			ProductID:       row.ProductID,
			Name:            row.Name,
			Model:           row.Model,
			OriginalPrice:   row.Price,
			Stock:           row.Stock,
			Category:        row.Category,
			TotalSales:      row.TotalSold,
			DiscountPercent: s.policy.Discount(row.TotalSold, row.Category),
			DiscountedPrice: s.policy.DiscountedPrice(row.Price, row.TotalSold, row.Category),
		})
	}
	return items, nil
}

func (s *service) Remove(ctx context.Context, userID, productID int64) error {
	return s.repo.Remove(ctx, userID, productID)
}
