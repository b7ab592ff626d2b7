package cart

import "github.com/shopspring/decimal"

// Row is a cart line joined with its product, as read from the store.
type Row struct {
	LineID    int64
	ProductID int64
	Quantity  int64
	Name      string
	Price     float64
	Category  string
	TotalSold int64
}

// LineView is a cart line with the discount policy applied, ready for
// display. Checkout ignores these derived prices.
type LineView struct {
	LineID          int64           `json:"cart_item_id"`
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       float64         `json:"product_price"`
	Category        string          `json:"product_category"`
	TotalSales      int64           `json:"total_sales"`
	DiscountPercent decimal.Decimal `json:"discount_percentage"`
	FinalPrice      decimal.Decimal `json:"final_price"`
}

type AddParams struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

type UpdateParams struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}
