package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransition encodes the order state machine:
// pending → processing | cancelled | completed, processing → cancelled |
// completed. Re-asserting the current status is allowed so repeated updates
// stay idempotent.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == StatusCompleted {
		return true
	}
	return from == StatusPending && (to == StatusProcessing || to == StatusCancelled)
}

type ShippingStatus string

const (
	ShippingNotYet  ShippingStatus = "not yet"
	ShippingShipped ShippingStatus = "shipped"
)

func (s ShippingStatus) Valid() bool {
	return s == ShippingNotYet || s == ShippingShipped
}

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

type Order struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"user_id"`
	TotalPrice      float64        `json:"total_price"`
	Status          Status         `json:"status"`
	ShippingStatus  ShippingStatus `json:"shipping_status"`
	PaymentStatus   string         `json:"payment_status"`
	PaymentMethod   string         `json:"payment_method"`
	TransactionID   *string        `json:"transaction_id,omitempty"`
	ShippingAddress string         `json:"shipping_address"`
	City            string         `json:"city"`
	PostalCode      string         `json:"postal_code"`
	PhoneNumber     string         `json:"phone_number"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	Lines           []Line         `json:"items,omitempty"`
}

// Line is an order line item. unit price is frozen at checkout and never
// changes afterwards.
type Line struct {
	ID                  int64   `json:"id"`
	OrderID             int64   `json:"order_id"`
	ProductID           int64   `json:"product_id"`
	ProductName         string  `json:"product_name,omitempty"`
	Quantity            int64   `json:"quantity"`
	UnitPriceAtPurchase float64 `json:"unit_price"`
}

// AdminRow is an order joined with the owning user's email for the admin
// listing.
type AdminRow struct {
	Order
	UserEmail string `json:"email"`
}

type ShippingInfo struct {
	Address       string `json:"shippingAddress"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	PhoneNumber   string `json:"phoneNumber"`
	PaymentMethod string `json:"paymentMethod"`
}

type CheckoutResult struct {
	OrderID    int64   `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
}
