package repository

import (
	"context"
	"strings"

	"alienic/internal/domain"

	"gorm.io/gorm"
)

// TestimonialFilters narrows the admin moderation list.
type TestimonialFilters struct {
	Search string
	Status domain.TestimonialStatus
	Limit  int
	Offset int
}

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) DB() *gorm.DB {
	return r.db
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) GetAll(ctx context.Context, f TestimonialFilters) ([]domain.Testimonial, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Testimonial{})

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(text) LIKE ?", like, like, like)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testimonials []domain.Testimonial
	err := q.
		Preload("Product").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&testimonials).Error

	return testimonials, total, err
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetApproved returns approved testimonials for the public page.
func (r *TestimonialRepository) GetApproved(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.TestimonialApproved).
		Preload("Product").
		Order("created_at DESC").
		Find(&testimonials).Error
	return testimonials, err
}

// GetHomepage returns approved testimonials flagged for the homepage carousel.
func (r *TestimonialRepository) GetHomepage(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := r.db.WithContext(ctx).
		Where("status = ? AND show_on_homepage = ?", domain.TestimonialApproved, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RatingsByIDs maps testimonial id -> rating for the given ids.
func (r *TestimonialRepository) RatingsByIDs(ctx context.Context, ids []string) (map[string]int, error) {
	ratings := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return ratings, nil
	}

	var rows []struct {
		ID     string
		Rating int
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Testimonial{}).
		Select("id", "rating").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		ratings[row.ID] = row.Rating
	}
	return ratings, nil
}

func (r *TestimonialRepository) CountByStatus(ctx context.Context, status domain.TestimonialStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Testimonial{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
