package collection

import "alienic/internal/domain"

type CreateRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=120"`
	Slug        string   `json:"slug" validate:"omitempty,max=140"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Mood        []string `json:"mood"`
	HeroImage   string   `json:"hero_image"`
	Order       int      `json:"order" validate:"gte=0"`
}

type UpdateRequest struct {
	Title       *string  `json:"title"`
	Subtitle    *string  `json:"subtitle"`
	Description *string  `json:"description"`
	Mood        []string `json:"mood"`
	HeroImage   *string  `json:"hero_image"`
	Order       *int     `json:"order"`
}

type ListResponse struct {
	Collections []domain.Collection `json:"collections"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}
