package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alienic/internal/domain"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

const feedLimit = 20

type Service struct {
	notifs       *repository.NotificationRepository
	messages     *repository.ContactMessageRepository
	testimonials *repository.TestimonialRepository
}

func NewService(
	notifs *repository.NotificationRepository,
	messages *repository.ContactMessageRepository,
	testimonials *repository.TestimonialRepository,
) *Service {
	return &Service{
		notifs:       notifs,
		messages:     messages,
		testimonials: testimonials,
	}
}

// Feed returns the unread notifications shaped for the admin badge/dropdown.
// Testimonial ratings are joined live; a dangling reference shows rating 0.
func (s *Service) Feed(ctx context.Context) (*FeedResponse, error) {
	unread, err := s.notifs.ListUnread(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	resp := &FeedResponse{
		ContactItems:     []ContactItem{},
		TestimonialItems: []TestimonialItem{},
	}

	var testimonialIDs []string
	for _, n := range unread {
		if ref := n.Ref(); ref.Testimonial != "" {
			testimonialIDs = append(testimonialIDs, ref.Testimonial)
		}
	}
	ratings, err := s.testimonials.RatingsByIDs(ctx, testimonialIDs)
	if err != nil {
		return nil, err
	}

	for _, n := range unread {
		switch n.Type {
		case domain.NotifContact:
			resp.ContactItems = append(resp.ContactItems, ContactItem{
				ID:        n.ID,
				Name:      n.Title,
				Subject:   n.Body,
				CreatedAt: n.CreatedAt.Format(time.RFC3339),
			})
		case domain.NotifTestimonial:
			rating := 0
			if ref := n.Ref(); ref.Testimonial != "" {
				rating = ratings[ref.Testimonial]
			}
			resp.TestimonialItems = append(resp.TestimonialItems, TestimonialItem{
				ID:        n.ID,
				Name:      n.Title,
				Rating:    rating,
				CreatedAt: n.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	resp.Count = len(resp.ContactItems) + len(resp.TestimonialItems)
	return resp, nil
}

// History returns the paginated full notification log, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) (*HistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.notifs.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, len(list))
	for i, n := range list {
		items[i] = historyItemFromEntity(n)
	}

	return &HistoryResponse{Notifications: items, Total: total}, nil
}

// MarkRead flips one notification to read. Idempotent.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.notifs.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// MarkAllRead flips every unread notification. Idempotent.
func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.notifs.MarkAllRead(ctx)
}

// MarkMessageRead advances the underlying contact message to Read.
// The overwrite is unconditional; an Archived message moved back to Read is
// allowed (status is freely settable, see the admin messages endpoint).
func (s *Service) MarkMessageRead(ctx context.Context, messageID string) error {
	if messageID == "" {
		return ErrInvalidInput
	}
	if err := s.messages.UpdateStatus(ctx, messageID, domain.MessageRead); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ApproveTestimonial sets the testimonial Approved and records a system
// notification, both in one transaction.
func (s *Service) ApproveTestimonial(ctx context.Context, id string) error {
	return s.moderate(ctx, id, domain.TestimonialApproved)
}

// RejectTestimonial sets the testimonial Rejected and records a system
// notification, both in one transaction.
func (s *Service) RejectTestimonial(ctx context.Context, id string) error {
	return s.moderate(ctx, id, domain.TestimonialRejected)
}

func (s *Service) moderate(ctx context.Context, id string, status domain.TestimonialStatus) error {
	if id == "" {
		return ErrInvalidInput
	}

	err := s.testimonials.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Testimonial{}).
			Where("id = ?", id).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		n := domain.NewSystemNotification(
			id,
			fmt.Sprintf("Testimonial %s", status),
			fmt.Sprintf("Testimonial %s was %s by admin.", id, strings.ToLower(string(status))),
		)
		return tx.Create(n).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Detail resolves the full entity a notification references. The loose
// foreign key means the row may be gone; that surfaces as ErrNotFound.
func (s *Service) Detail(ctx context.Context, notificationID string, typ domain.NotificationType) (any, error) {
	n, err := s.notifs.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if n.ReferenceID == nil {
		return nil, ErrNoReference
	}

	switch typ {
	case domain.NotifContact:
		m, err := s.messages.GetByID(ctx, *n.ReferenceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return m, nil
	case domain.NotifTestimonial:
		t, err := s.testimonials.GetByID(ctx, *n.ReferenceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return t, nil
	default:
		return nil, ErrInvalidInput
	}
}
