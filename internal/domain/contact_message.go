package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageStatus is the inbox state of a contact message.
// Transitions are freely settable among the three values; the pipeline is
// New -> Read -> Archived in practice but nothing enforces direction.
type MessageStatus string

const (
	MessageNew      MessageStatus = "New"
	MessageRead     MessageStatus = "Read"
	MessageArchived MessageStatus = "Archived"
)

// ValidMessageStatus reports whether s is one of the allowed message statuses.
func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageNew, MessageRead, MessageArchived:
		return true
	}
	return false
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Subject   string        `json:"subject" gorm:"not null"`
	Message   string        `json:"message" gorm:"not null"`
	Status    MessageStatus `json:"status" gorm:"default:New;index"`
	CreatedAt time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
