package product

import "alienic/internal/domain"

// CreateRequest is the admin product creation payload. Slug is derived from
// the name when omitted.
type CreateRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	Slug         string   `json:"slug" validate:"omitempty,max=140"`
	CategoryID   *string  `json:"category_id"`
	CollectionID *string  `json:"collection_id"`
	Price        string   `json:"price"`
	PriceNumeric float64  `json:"price_numeric" validate:"gte=0"`
	Material     string   `json:"material"`
	Story        string   `json:"story"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	IsFeatured   bool     `json:"is_featured"`
	IsAvailable  bool     `json:"is_available"`
	IsCustom     bool     `json:"is_custom"`
}

// UpdateRequest carries partial product edits. Nil fields are untouched.
type UpdateRequest struct {
	Name         *string  `json:"name"`
	CategoryID   *string  `json:"category_id"`
	CollectionID *string  `json:"collection_id"`
	Price        *string  `json:"price"`
	PriceNumeric *float64 `json:"price_numeric"`
	Material     *string  `json:"material"`
	Story        *string  `json:"story"`
	Image        *string  `json:"image"`
	Images       []string `json:"images"`
	IsFeatured   *bool    `json:"is_featured"`
	IsAvailable  *bool    `json:"is_available"`
	IsCustom     *bool    `json:"is_custom"`
	Status       *string  `json:"status"`
}

// ListResponse is the paginated admin product list.
type ListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
