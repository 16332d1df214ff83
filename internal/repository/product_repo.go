package repository

import (
	"context"
	"strings"

	"alienic/internal/domain"

	"gorm.io/gorm"
)

// ProductFilters narrows the admin product list.
// Status is one of "", "featured", "available", "unavailable".
type ProductFilters struct {
	Search     string
	Status     string
	CategoryID string
	Limit      int
	Offset     int
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) DB() *gorm.DB {
	return r.db
}

// GetAll returns products matching the filters plus the unpaginated total.
func (r *ProductRepository) GetAll(ctx context.Context, f ProductFilters) ([]domain.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ? OR LOWER(material) LIKE ?", like, like, like)
	}

	switch f.Status {
	case "featured":
		q = q.Where("is_featured = ?", true)
	case "available":
		q = q.Where("is_available = ?", true)
	case "unavailable":
		q = q.Where("is_available = ?", false)
	}

	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := q.
		Preload("Category").
		Preload("Collection").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&products).Error

	return products, total, err
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Collection").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *ProductRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count, err
}

// FindByNameLike returns the first product whose name contains the fragment,
// case-insensitive. Used to attach testimonials to pieces by name.
func (r *ProductRepository) FindByNameLike(ctx context.Context, fragment string) (*domain.Product, error) {
	var p domain.Product
	like := "%" + strings.ToLower(strings.TrimSpace(fragment)) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetShop returns available, non-gallery products for the public shop page.
func (r *ProductRepository) GetShop(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_available = ? AND status = ?", true, domain.ProductActive).
		Preload("Category").
		Preload("Collection").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// GetGallery returns past works: pieces moved to the gallery by hand plus
// pieces archived after a delivered order.
func (r *ProductRepository) GetGallery(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("status IN ?", []domain.ProductStatus{domain.ProductArchived, domain.ProductGallery}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// GetFeatured returns featured available products for the homepage.
func (r *ProductRepository) GetFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND is_available = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
