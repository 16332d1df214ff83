package category

import "errors"

var (
	ErrNotFound  = errors.New("category: not found")
	ErrSlugTaken = errors.New("category: slug already in use")
	ErrInUse     = errors.New("category: products still reference it")
)
