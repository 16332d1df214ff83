package testimonial

import "alienic/internal/domain"

// SubmitRequest is the public review form payload. Product is a free-text
// piece name matched against the catalog; Image is an already-uploaded URL.
type SubmitRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Location string `json:"location,omitempty" validate:"max=120"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text     string `json:"text" validate:"required"`
	Product  string `json:"product,omitempty"`
	Image    string `json:"image,omitempty"`
}

// UpdateRequest is the admin moderation payload. Both fields are optional
// and independent; Status must be a valid literal when present.
type UpdateRequest struct {
	Status         *string `json:"status,omitempty"`
	ShowOnHomepage *bool   `json:"show_on_homepage,omitempty"`
}

// ListResponse is the paginated admin moderation list.
type ListResponse struct {
	Testimonials []domain.Testimonial `json:"testimonials"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}
