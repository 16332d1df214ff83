package repository

import (
	"context"
	"strings"

	"alienic/internal/domain"

	"gorm.io/gorm"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) DB() *gorm.DB {
	return r.db
}

// GetAll returns collections ordered by display position.
func (r *CollectionRepository) GetAll(ctx context.Context, search string, limit, offset int) ([]domain.Collection, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Collection{})

	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(subtitle) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("display_order ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var collections []domain.Collection
	err := q.Find(&collections).Error
	return collections, total, err
}

func (r *CollectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	var c domain.Collection
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug returns a collection with its products for the public page.
func (r *CollectionRepository) GetBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	var c domain.Collection
	err := r.db.WithContext(ctx).
		Preload("Products", "is_available = ?", true).
		First(&c, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollectionRepository) Update(ctx context.Context, c *domain.Collection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Collection{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
