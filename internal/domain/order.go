package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus values for the admin order pipeline.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the allowed order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is recorded manually by the admin; customers order via DM or the
// contact form, there is no public checkout.
type Order struct {
	ID                string      `json:"id" gorm:"primaryKey"`
	CustomerName      string      `json:"customer_name" gorm:"not null"`
	CustomerPhone     string      `json:"customer_phone,omitempty"`
	CustomerUsername  string      `json:"customer_username,omitempty"`
	Source            string      `json:"source,omitempty"`
	TotalAmount       float64     `json:"total_amount"`
	Status            OrderStatus `json:"status" gorm:"default:Pending;index"`
	Notes             string      `json:"notes,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time  `json:"actual_delivery,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	Products []OrderProduct `json:"products,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderProduct links an order to a product with a quantity.
type OrderProduct struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	OrderID   string    `json:"order_id" gorm:"index;not null"`
	ProductID string    `json:"product_id" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderProduct) TableName() string { return "order_products" }

func (p *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
