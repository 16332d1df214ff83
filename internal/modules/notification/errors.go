package notification

import "errors"

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidInput = errors.New("invalid_input")
	ErrNoReference  = errors.New("no_reference")
)
