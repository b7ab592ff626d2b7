// Package pricing holds the discount policy applied to storefront price
// previews (cart, wishlist, product discount endpoint). Checkout charges the
// raw catalog price; see the order package.
package pricing

import "github.com/shopspring/decimal"

// Volume thresholds on cumulative units sold.
var (
	tierHigh = decimal.NewFromInt(15) // ≥10 units sold
	tierMid  = decimal.NewFromInt(10) // ≥5 units sold
)

// Policy computes the discount percentage for a product. Category promotions
// are a lookup table so new campaigns are data, not code.
type Policy struct {
	promos map[string]decimal.Decimal
}

// NewPolicy builds a policy with the given category promo percentages.
func NewPolicy(promos map[string]int64) *Policy {
	p := &Policy{promos: make(map[string]decimal.Decimal, len(promos))}
	for category, percent := range promos {
		p.promos[category] = decimal.NewFromInt(percent)
	}
	return p
}

// DefaultPolicy carries the standing Helmet promotion.
func DefaultPolicy() *Policy {
	return NewPolicy(map[string]int64{"Helmet": 5})
}

// Discount returns the percentage (0..100) off the unit price.
func (p *Policy) Discount(totalSold int64, category string) decimal.Decimal {
	percent := decimal.Zero
	switch {
	case totalSold >= 10:
		percent = tierHigh
	case totalSold >= 5:
		percent = tierMid
	}

	if promo, ok := p.promos[category]; ok {
		percent = percent.Add(promo)
	}
	return percent
}

// DiscountedPrice applies the policy to a unit price.
func (p *Policy) DiscountedPrice(price float64, totalSold int64, category string) decimal.Decimal {
	unit := decimal.NewFromFloat(price)
	percent := p.Discount(totalSold, category)
	discount := unit.Mul(percent).Div(decimal.NewFromInt(100))
	final := unit.Sub(discount)
	if final.IsNegative() {
		return unit
	}
	return final.Round(2)
}

// LineTotal is quantity × discounted unit price.
func (p *Policy) LineTotal(price float64, quantity int64, totalSold int64, category string) decimal.Decimal {
	return p.DiscountedPrice(price, totalSold, category).
		Mul(decimal.NewFromInt(quantity)).
		Round(2)
}
