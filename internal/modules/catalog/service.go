package catalog

import (
	"context"
	"errors"

	"alienic/internal/domain"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

const (
	homeFeaturedLimit    = 6
	homeTestimonialLimit = 3
)

type Service struct {
	products     *repository.ProductRepository
	collections  *repository.CollectionRepository
	testimonials *repository.TestimonialRepository
}

func NewService(
	products *repository.ProductRepository,
	collections *repository.CollectionRepository,
	testimonials *repository.TestimonialRepository,
) *Service {
	return &Service{products: products, collections: collections, testimonials: testimonials}
}

// Shop returns every available piece that is not retired to the gallery.
func (s *Service) Shop(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetShop(ctx)
}

// Gallery returns archived and gallery pieces kept visible as past work.
func (s *Service) Gallery(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetGallery(ctx)
}

// Home assembles the landing page: featured pieces, collections in display
// order and the approved testimonials pinned to the homepage.
func (s *Service) Home(ctx context.Context) (*HomeResponse, error) {
	featured, err := s.products.GetFeatured(ctx, homeFeaturedLimit)
	if err != nil {
		return nil, err
	}
	collections, _, err := s.collections.GetAll(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.testimonials.GetHomepage(ctx, homeTestimonialLimit)
	if err != nil {
		return nil, err
	}
	return &HomeResponse{
		Featured:     featured,
		Collections:  collections,
		Testimonials: testimonials,
	}, nil
}

func (s *Service) Collections(ctx context.Context) ([]domain.Collection, error) {
	collections, _, err := s.collections.GetAll(ctx, "", 0, 0)
	return collections, err
}

func (s *Service) CollectionBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	c, err := s.collections.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
