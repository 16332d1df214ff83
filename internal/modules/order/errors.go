package order

import "errors"

var (
	ErrNotFound       = errors.New("order: not found")
	ErrInvalidStatus  = errors.New("order: unknown status")
	ErrUnknownProduct = errors.New("order: unknown product in line items")
)
