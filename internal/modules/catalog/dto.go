package catalog

import "alienic/internal/domain"

// HomeResponse bundles everything the landing page renders in one call.
type HomeResponse struct {
	Featured     []domain.Product     `json:"featured"`
	Collections  []domain.Collection  `json:"collections"`
	Testimonials []domain.Testimonial `json:"testimonials"`
}
