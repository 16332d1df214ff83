package testimonial

import (
	"context"
	"errors"
	"strings"

	"alienic/internal/domain"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	testimonials *repository.TestimonialRepository
	products     *repository.ProductRepository
}

func NewService(testimonials *repository.TestimonialRepository, products *repository.ProductRepository) *Service {
	return &Service{testimonials: testimonials, products: products}
}

// Submit stores a pending testimonial and its admin notification in a single
// transaction. A free-text product name is matched to a catalog piece when
// possible; no match is not an error.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidInput
	}

	t := &domain.Testimonial{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Rating:   req.Rating,
		Text:     req.Text,
		Image:    req.Image,
		Source:   "Form",
		Status:   domain.TestimonialPending,
	}

	if name := strings.TrimSpace(req.Product); name != "" {
		if p, err := s.products.FindByNameLike(ctx, name); err == nil {
			t.ProductID = &p.ID
		}
	}

	err := s.testimonials.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Create(domain.NewTestimonialNotification(t)).Error
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListPublic returns approved testimonials for the public page.
func (s *Service) ListPublic(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.GetApproved(ctx)
}

// List returns the admin moderation list.
func (s *Service) List(ctx context.Context, f repository.TestimonialFilters) ([]domain.Testimonial, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Status != "" && !domain.ValidTestimonialStatus(f.Status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.testimonials.GetAll(ctx, f)
}

// Update applies moderation changes. Status and ShowOnHomepage are
// independent: either may change alone, and status may move between
// Approved and Rejected in both directions.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Testimonial, error) {
	if req.Status == nil && req.ShowOnHomepage == nil {
		return nil, ErrInvalidInput
	}

	if req.Status != nil && !domain.ValidTestimonialStatus(domain.TestimonialStatus(*req.Status)) {
		return nil, ErrInvalidStatus
	}

	t, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		t.Status = domain.TestimonialStatus(*req.Status)
	}
	if req.ShowOnHomepage != nil {
		t.ShowOnHomepage = *req.ShowOnHomepage
	}

	if err := s.testimonials.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
