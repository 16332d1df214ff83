package contact

import "errors"

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidStatus = errors.New("invalid_status")
)
