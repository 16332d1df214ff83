package testimonial

import "errors"

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidInput  = errors.New("invalid_input")
)
