package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product with the same name, model, and category already exists")
	ErrStockConflict    = errors.New("insufficient stock")
	ErrInvalidInput     = errors.New("invalid product input")
)
