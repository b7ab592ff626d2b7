package cart

import (
	"context"

	"gearmart-be/internal/pricing"

	"github.com/shopspring/decimal"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, params AddParams) error
	List(ctx context.Context, userID int64) ([]LineView, error)
	UpdateQuantity(ctx context.Context, params UpdateParams) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	Total(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type service struct {
	repo   Repository
	policy *pricing.Policy
}

func NewService(repo Repository, policy *pricing.Policy) Service {
	return &service{repo: repo, policy: policy}
}

func (s *service) AddToCart(ctx context.Context, params AddParams) error {
	if params.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.AddItem(ctx, params)
}

// List returns the cart with the discount policy applied per line. These are
// preview prices only; checkout works from the raw catalog price.
func (s *service) List(ctx context.Context, userID int64) ([]LineView, error) {
	rows, err := s.repo.GetRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]LineView, 0, len(rows))
	for _, row := range rows {
		views = append(views, LineView{
			LineID:          row.LineID,
			ProductID:       row.ProductID,
			ProductName:     row.Name,
			Quantity:        row.Quantity,
			UnitPrice:       row.Price,
			Category:        row.Category,
			TotalSales:      row.TotalSold,
			DiscountPercent: s.policy.Discount(row.TotalSold, row.Category),
			FinalPrice:      s.policy.DiscountedPrice(row.Price, row.TotalSold, row.Category),
		})
	}
	return views, nil
}

func (s *service) UpdateQuantity(ctx context.Context, params UpdateParams) error {
	if params.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.repo.UpdateQuantity(ctx, params)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return s.repo.RemoveItem(ctx, userID, productID)
}

// Total is the discounted preview total, not what checkout will charge.
func (s *service) Total(ctx context.Context, userID int64) (decimal.Decimal, error) {
	rows, err := s.repo.GetRows(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(s.policy.LineTotal(row.Price, row.Quantity, row.TotalSold, row.Category))
	}
	return total, nil
}
