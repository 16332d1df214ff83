package order

import (
	"time"

	"alienic/internal/domain"
)

// LineItem is one product in an order.
type LineItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CreateRequest records an order the admin received over DM or the contact
// form.
type CreateRequest struct {
	CustomerName      string     `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerPhone     string     `json:"customer_phone"`
	CustomerUsername  string     `json:"customer_username"`
	Source            string     `json:"source"`
	TotalAmount       float64    `json:"total_amount" validate:"gte=0"`
	Notes             string     `json:"notes"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	Items             []LineItem `json:"items" validate:"required,min=1,dive"`
}

// UpdateRequest carries partial order edits. Nil fields are untouched.
type UpdateRequest struct {
	CustomerName      *string    `json:"customer_name"`
	CustomerPhone     *string    `json:"customer_phone"`
	CustomerUsername  *string    `json:"customer_username"`
	Source            *string    `json:"source"`
	TotalAmount       *float64   `json:"total_amount"`
	Status            *string    `json:"status"`
	Notes             *string    `json:"notes"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	Items             []LineItem `json:"items"`
}

type ListResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
}
