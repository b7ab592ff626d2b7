package analytics

// ProductRevenue is a product with its cumulative order revenue, used for
// ABC classification.
type ProductRevenue struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int64   `json:"quantity"`
	TotalSold int64   `json:"total_quantity_sold"`
	Revenue   float64 `json:"total_sales"`
}

// ABCResult buckets products by cumulative revenue share: A up to 80%,
// B up to 95%, C the long tail.
type ABCResult struct {
	A []ProductRevenue `json:"A"`
	B []ProductRevenue `json:"B"`
	C []ProductRevenue `json:"C"`
}

type MovementClass string

const (
	FastMoving MovementClass = "Fast-moving"
	SlowMoving MovementClass = "Slow-moving"
	NonMoving  MovementClass = "Non-moving"
)

type FSNItem struct {
	ProductID int64         `json:"id"`
	Name      string        `json:"name"`
	Model     string        `json:"model"`
	TotalSold int64         `json:"total_quantity_sold"`
	Class     MovementClass `json:"sales_category"`
}

// WeeklySalesRow is a product's units sold in one ISO week.
type WeeklySalesRow struct {
	ProductID int64
	Name      string
	Year      int
	Week      int
	Quantity  int64
}

// SalesTotalRow aggregates a product's sales over the forecast window.
type SalesTotalRow struct {
	ProductID int64
	Name      string
	Quantity  int64
	Price     float64
}

type Prediction struct {
	ProductName string `json:"product_name"`
	NextWeek    int64  `json:"predicted_sales_next_week"`
}

type ReportRow struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"product_name"`
	Category     string  `json:"category"`
	TotalSold    int64   `json:"total_quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}
