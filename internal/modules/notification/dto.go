package notification

import (
	"time"

	"alienic/internal/domain"
)

// ContactItem is one contact-type entry in the unread feed.
type ContactItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"created_at"`
}

// TestimonialItem is one testimonial-type entry in the unread feed.
// Rating is joined live from the referenced testimonial; 0 when the
// reference dangles.
type TestimonialItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// FeedResponse is the polling payload for the admin badge and dropdown.
type FeedResponse struct {
	Count            int               `json:"count"`
	ContactItems     []ContactItem     `json:"contact_items"`
	TestimonialItems []TestimonialItem `json:"testimonial_items"`
}

// HistoryItem is one row on the notification history page.
type HistoryItem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	ReferenceID *string `json:"reference_id,omitempty"`
	Title       string  `json:"title"`
	Body        string  `json:"body,omitempty"`
	IsRead      bool    `json:"is_read"`
	CreatedAt   string  `json:"created_at"`
}

// HistoryResponse is the paginated full history.
type HistoryResponse struct {
	Notifications []HistoryItem `json:"notifications"`
	Total         int64         `json:"total"`
}

func historyItemFromEntity(n domain.Notification) HistoryItem {
	return HistoryItem{
		ID:          n.ID,
		Type:        string(n.Type),
		ReferenceID: n.ReferenceID,
		Title:       n.Title,
		Body:        n.Body,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}

// ActionRequest is the mutation dispatch body for POST /notifications.
type ActionRequest struct {
	Action    string `json:"action" binding:"required"`
	ID        string `json:"id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// HistoryRequest selects a page of notification history.
type HistoryRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DetailRequest resolves the entity behind a notification.
type DetailRequest struct {
	NotificationID string `json:"notification_id" binding:"required"`
	Type           string `json:"type" binding:"required"`
}
