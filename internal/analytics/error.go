package analytics

import "errors"

var ErrInsufficientData = errors.New("insufficient valid data for regression")
