package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductStatus tracks where a piece lives: active in the shop, archived
// after a delivered order, or moved to the gallery as a past work.
type ProductStatus string

const (
	ProductActive   ProductStatus = "Active"
	ProductArchived ProductStatus = "Archived"
	ProductGallery  ProductStatus = "Gallery"
)

// Product is a single jewelry piece.
type Product struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Slug         string        `json:"slug" gorm:"uniqueIndex;not null"`
	Name         string        `json:"name" gorm:"not null;index"`
	CategoryID   *string       `json:"category_id,omitempty" gorm:"index"`
	Price        string        `json:"price"`
	PriceNumeric float64       `json:"price_numeric"`
	Material     string        `json:"material,omitempty"`
	CollectionID *string       `json:"collection_id,omitempty" gorm:"index"`
	Story        string        `json:"story,omitempty"`
	Image        string        `json:"image,omitempty"`
	IsFeatured   bool          `json:"is_featured"`
	IsAvailable  bool          `json:"is_available"`
	IsCustom     bool          `json:"is_custom"`
	Status       ProductStatus `json:"status" gorm:"default:Active;index"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Category   *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Collection *Collection    `json:"collection,omitempty" gorm:"foreignKey:CollectionID"`
	Images     []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductImage is an additional gallery image for a product. Order is the
// display position, ascending.
type ProductImage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProductID string    `json:"product_id" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:display_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProductImage) TableName() string { return "product_images" }

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
