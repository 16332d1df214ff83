package contact

import (
	"context"
	"errors"
	"strings"

	"alienic/internal/domain"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	messages *repository.ContactMessageRepository
}

func NewService(messages *repository.ContactMessageRepository) *Service {
	return &Service{messages: messages}
}

// Submit stores a contact message and its admin notification in a single
// transaction, so a submission can never be invisible to the back office.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  domain.MessageNew,
	}

	err := s.messages.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(domain.NewContactNotification(m)).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns the admin inbox with search, status filter, sort and paging.
func (s *Service) List(ctx context.Context, f repository.MessageFilters) ([]domain.ContactMessage, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.messages.GetAll(ctx, f)
}

// SetStatus overwrites the message status. Any of the three literals is
// accepted in any order; there is no forward-only enforcement.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	if !domain.ValidMessageStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.messages.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
