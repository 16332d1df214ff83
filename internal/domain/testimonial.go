package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestimonialStatus is the moderation state. Approved and Rejected are not
// terminal; the admin may flip between them at any time.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "Pending"
	TestimonialApproved TestimonialStatus = "Approved"
	TestimonialRejected TestimonialStatus = "Rejected"
)

// ValidTestimonialStatus reports whether s is one of the allowed statuses.
func ValidTestimonialStatus(s TestimonialStatus) bool {
	switch s {
	case TestimonialPending, TestimonialApproved, TestimonialRejected:
		return true
	}
	return false
}

// Testimonial is a customer review submitted from the public form.
// Rating is validated to [1,5] at the input layer, not here.
type Testimonial struct {
	ID             string            `json:"id" gorm:"primaryKey"`
	Name           string            `json:"name" gorm:"not null"`
	Location       string            `json:"location,omitempty"`
	Rating         int               `json:"rating" gorm:"not null"`
	Text           string            `json:"text" gorm:"not null"`
	ProductID      *string           `json:"product_id,omitempty" gorm:"index"`
	Image          string            `json:"image,omitempty"`
	Source         string            `json:"source,omitempty"`
	Status         TestimonialStatus `json:"status" gorm:"default:Pending;index"`
	ShowOnHomepage bool              `json:"show_on_homepage"`
	CreatedAt      time.Time         `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Testimonial) TableName() string { return "testimonials" }

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsPublic reports whether the testimonial may appear on the public
// testimonials page.
func (t *Testimonial) IsPublic() bool {
	return t.Status == TestimonialApproved
}

// IsHomepage reports whether the testimonial belongs in the homepage carousel.
func (t *Testimonial) IsHomepage() bool {
	return t.Status == TestimonialApproved && t.ShowOnHomepage
}
