package collection

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
	collections *repository.CollectionRepository
}

func NewService(collections *repository.CollectionRepository) *Service {
	return &Service{collections: collections}
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]domain.Collection, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.collections.GetAll(ctx, search, limit, offset)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Collection, error) {
	collectionSlug := req.Slug
	if collectionSlug == "" {
		collectionSlug = slug.Make(req.Title)
	}

	if _, err := s.collections.GetBySlug(ctx, collectionSlug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &domain.Collection{
		Slug:        collectionSlug,
		Title:       strings.TrimSpace(req.Title),
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Mood:        domain.StringList(req.Mood),
		HeroImage:   req.HeroImage,
		Order:       req.Order,
	}
	if err := s.collections.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		c.Title = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		c.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Mood != nil {
		c.Mood = domain.StringList(req.Mood)
	}
	if req.HeroImage != nil {
		c.HeroImage = *req.HeroImage
	}
	if req.Order != nil {
		c.Order = *req.Order
	}

	if err := s.collections.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.collections.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
