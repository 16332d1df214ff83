package repository

import (
	"context"
	"strings"

	"alienic/internal/domain"

	"gorm.io/gorm"
)

// MessageFilters narrows the admin inbox list.
type MessageFilters struct {
	Search    string
	Status    domain.MessageStatus
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

var messageSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
	"subject":   "subject",
	"status":    "status",
}

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) DB() *gorm.DB {
	return r.db
}

func (r *ContactMessageRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactMessageRepository) GetAll(ctx context.Context, f MessageFilters) ([]domain.ContactMessage, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.ContactMessage{})

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(message) LIKE ?",
			like, like, like, like,
		)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sort column is whitelisted; anything unknown falls back to created_at.
	col, ok := messageSortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		dir = "ASC"
	}

	var messages []domain.ContactMessage
	err := q.
		Order(col + " " + dir).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&messages).Error

	return messages, total, err
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactMessageRepository) CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
