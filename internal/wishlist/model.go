package wishlist

import "github.com/shopspring/decimal"

// Row is a wishlist entry joined with its product.
type Row struct {
	WishlistID int64
	ProductID  int64
	Name       string
	Model      string
	Price      float64
	Stock      int64
	Category   string
	TotalSold  int64
}

// ItemView is a wishlist entry with preview pricing applied.
type ItemView struct {
	WishlistID      int64           `json:"wishlist_id"`
	ProductID       int64           `json:"product_id"`
	Name            string          `json:"name"`
	Model           string          `json:"model"`
	OriginalPrice   float64         `json:"original_price"`
	Stock           int64           `json:"quantity"`
	Category        string          `json:"product_category"`
	TotalSales      int64           `json:"total_sales"`
	DiscountPercent decimal.Decimal `json:"discount_percentage"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}
