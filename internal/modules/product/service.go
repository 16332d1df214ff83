package product

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
	products *repository.ProductRepository
}

func NewService(products *repository.ProductRepository) *Service {
	return &Service{products: products}
}

func (s *Service) List(ctx context.Context, f repository.ProductFilters) ([]domain.Product, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.products.GetAll(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Product, error) {
	productSlug := req.Slug
	if productSlug == "" {
		productSlug = slug.Make(req.Name)
	}
	if productSlug == "" {
		return nil, ErrInvalidInput
	}

	taken, err := s.products.CountBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrSlugTaken
	}

	p := &domain.Product{
		Slug:         productSlug,
		Name:         strings.TrimSpace(req.Name),
		CategoryID:   req.CategoryID,
		CollectionID: req.CollectionID,
		Price:        req.Price,
		PriceNumeric: req.PriceNumeric,
		Material:     req.Material,
		Story:        req.Story,
		Image:        req.Image,
		IsFeatured:   req.IsFeatured,
		IsAvailable:  req.IsAvailable,
		IsCustom:     req.IsCustom,
		Status:       domain.ProductActive,
	}

	err = s.products.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i, url := range req.Images {
			img := &domain.ProductImage{ProductID: p.ID, URL: url, Order: i}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Product, error) {
	if req.Status != nil {
		switch domain.ProductStatus(*req.Status) {
		case domain.ProductActive, domain.ProductArchived, domain.ProductGallery:
		default:
			return nil, ErrInvalidInput
		}
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil {
		p.CategoryID = req.CategoryID
	}
	if req.CollectionID != nil {
		p.CollectionID = req.CollectionID
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.PriceNumeric != nil {
		p.PriceNumeric = *req.PriceNumeric
	}
	if req.Material != nil {
		p.Material = *req.Material
	}
	if req.Story != nil {
		p.Story = *req.Story
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.IsCustom != nil {
		p.IsCustom = *req.IsCustom
	}
	if req.Status != nil {
		p.Status = domain.ProductStatus(*req.Status)
	}

	err = s.products.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if req.Images == nil {
			return nil
		}
		if err := tx.Where("product_id = ?", p.ID).Delete(&domain.ProductImage{}).Error; err != nil {
			return err
		}
		for i, url := range req.Images {
			img := &domain.ProductImage{ProductID: p.ID, URL: url, Order: i}
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

// MoveToGallery retires a piece from the shop into the public gallery. The
// piece stays visible as past work but can no longer be ordered.
func (s *Service) MoveToGallery(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Status = domain.ProductGallery
	p.IsAvailable = false
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
