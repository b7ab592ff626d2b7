package cart

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartLineNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
)
