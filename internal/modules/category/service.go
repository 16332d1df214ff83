package category

import (
	"context"
	"errors"
	"strings"

	"alienic/internal/domain"
	"alienic/internal/pkg/slug"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	categories *repository.CategoryRepository
	products   *repository.ProductRepository
}

func NewService(categories *repository.CategoryRepository, products *repository.ProductRepository) *Service {
	return &Service{categories: categories, products: products}
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]domain.Category, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.categories.GetAll(ctx, search, limit, offset)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Category, error) {
	categorySlug := req.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(req.Name)
	}

	if _, err := s.categories.GetBySlug(ctx, categorySlug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        categorySlug,
		Description: req.Description,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete refuses to remove a category while products still reference it, so
// the catalog never ends up with dangling category links.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
