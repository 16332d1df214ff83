package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType tags which entity a notification references.
type NotificationType string

const (
	NotifContact     NotificationType = "contact"
	NotifTestimonial NotificationType = "testimonial"
	NotifSystem      NotificationType = "system"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifContact, NotifTestimonial, NotifSystem:
		return true
	}
	return false
}

// Notification is one admin-attention event. Title and Body are snapshots
// taken at creation time and never re-derived from the referenced entity.
// ReferenceID is a loose foreign key: the referenced row may be deleted
// while the notification lives on, and Type decides which table it joins.
type Notification struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	Type        NotificationType `json:"type" gorm:"not null;index"`
	ReferenceID *string          `json:"reference_id,omitempty"`
	Title       string           `json:"title"`
	Body        string           `json:"body,omitempty"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NewContactNotification snapshots a fresh contact message into an unread
// notification. Callers create both rows in one transaction.
func NewContactNotification(m *ContactMessage) *Notification {
	ref := m.ID
	return &Notification{
		Type:        NotifContact,
		ReferenceID: &ref,
		Title:       fmt.Sprintf("New message from %s", m.Name),
		Body:        m.Subject,
	}
}

// NewTestimonialNotification snapshots a fresh testimonial submission.
func NewTestimonialNotification(t *Testimonial) *Notification {
	ref := t.ID
	return &Notification{
		Type:        NotifTestimonial,
		ReferenceID: &ref,
		Title:       fmt.Sprintf("New testimonial from %s", t.Name),
		Body:        fmt.Sprintf("%d★ review", t.Rating),
	}
}

// NewSystemNotification records a moderation action, loosely referencing the
// entity it acted on.
func NewSystemNotification(referenceID, title, body string) *Notification {
	n := &Notification{
		Type:  NotifSystem,
		Title: title,
		Body:  body,
	}
	if referenceID != "" {
		n.ReferenceID = &referenceID
	}
	return n
}

// NotificationRef is the typed view of (Type, ReferenceID).
type NotificationRef struct {
	Contact     string
	Testimonial string
}

// Ref resolves the tagged reference. Both fields empty means a pure system
// notification or a dangling reference.
func (n *Notification) Ref() NotificationRef {
	if n.ReferenceID == nil {
		return NotificationRef{}
	}
	switch n.Type {
	case NotifContact:
		return NotificationRef{Contact: *n.ReferenceID}
	case NotifTestimonial:
		return NotificationRef{Testimonial: *n.ReferenceID}
	default:
		return NotificationRef{}
	}
}
