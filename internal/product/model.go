package product

import "time"

type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Model             string    `json:"model"`
	Category          string    `json:"category"`
	StockQuantity     int64     `json:"stock_quantity"`
	Price             float64   `json:"price"`
	Description       *string   `json:"description,omitempty"`
	Dimensions        *string   `json:"dimensions,omitempty"`
	Weight            *string   `json:"weight,omitempty"`
	Manufacturer      *string   `json:"manufacturer,omitempty"`
	WarrantyPeriod    *string   `json:"warranty_period,omitempty"`
	TotalQuantitySold int64     `json:"total_quantity_sold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SaveParams struct {
	Name           string  `json:"name"`
	Model          string  `json:"model"`
	Category       string  `json:"category"`
	StockQuantity  int64   `json:"stock_quantity"`
	Price          float64 `json:"price"`
	Description    *string `json:"description"`
	Dimensions     *string `json:"dimensions"`
	Weight         *string `json:"weight"`
	Manufacturer   *string `json:"manufacturer"`
	WarrantyPeriod *string `json:"warranty_period"`
}

// TopSeller is a product ranked by cumulative units sold, with the derived
// star rating shown on the storefront.
type TopSeller struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	TotalQuantitySold int64  `json:"total_quantity_sold"`
	Rating            int    `json:"rating"`
}

func RatingFor(totalQuantitySold int64) int {
	switch {
	case totalQuantitySold > 8:
		return 5
	case totalQuantitySold > 6:
		return 4
	case totalQuantitySold > 4:
		return 3
	case totalQuantitySold > 2:
		return 2
	default:
		return 1
	}
}
