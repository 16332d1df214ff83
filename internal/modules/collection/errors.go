package collection

import "errors"

var (
	ErrNotFound  = errors.New("collection: not found")
	ErrSlugTaken = errors.New("collection: slug already in use")
)
