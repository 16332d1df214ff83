package contact

import "alienic/internal/domain"

// SubmitRequest is the public contact form payload.
type SubmitRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// UpdateStatusRequest changes an inbox message's status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListResponse is the paginated admin inbox.
type ListResponse struct {
	Messages []domain.ContactMessage `json:"messages"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}
