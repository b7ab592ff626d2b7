package order

import "errors"

var (
	ErrCartNotFound          = errors.New("cart not found")
	ErrCartEmpty             = errors.New("no items in the cart")
	ErrInsufficientStock     = errors.New("insufficient stock for one or more items")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("order status transition not allowed")
	ErrInvalidShippingStatus = errors.New("invalid shipping status")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrMissingPaymentDetails = errors.New("missing payment details")
)
