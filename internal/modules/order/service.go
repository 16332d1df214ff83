package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"alienic/internal/domain"
	"alienic/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	orders   *repository.OrderRepository
	products *repository.ProductRepository
}

func NewService(orders *repository.OrderRepository, products *repository.ProductRepository) *Service {
	return &Service{orders: orders, products: products}
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(domain.OrderStatus(status)) {
		return nil, ErrInvalidStatus
	}
	return s.orders.GetAll(ctx, domain.OrderStatus(status))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Create records an order with its line items in one transaction. Every line
// item must reference an existing product.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Order, error) {
	o := &domain.Order{
		CustomerName:      strings.TrimSpace(req.CustomerName),
		CustomerPhone:     req.CustomerPhone,
		CustomerUsername:  req.CustomerUsername,
		Source:            req.Source,
		TotalAmount:       req.TotalAmount,
		Status:            domain.OrderPending,
		Notes:             req.Notes,
		EstimatedDelivery: req.EstimatedDelivery,
	}

	err := s.orders.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		return createLineItems(tx, o.ID, req.Items)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, o.ID)
}

// Update applies partial edits. Moving an order to Delivered stamps the
// delivery time and retires every non-custom piece in it from the shop,
// since each piece is handmade and sold once.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Order, error) {
	if req.Status != nil && !domain.ValidOrderStatus(domain.OrderStatus(*req.Status)) {
		return nil, ErrInvalidStatus
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.CustomerName != nil {
		o.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.CustomerPhone != nil {
		o.CustomerPhone = *req.CustomerPhone
	}
	if req.CustomerUsername != nil {
		o.CustomerUsername = *req.CustomerUsername
	}
	if req.Source != nil {
		o.Source = *req.Source
	}
	if req.TotalAmount != nil {
		o.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	if req.EstimatedDelivery != nil {
		o.EstimatedDelivery = req.EstimatedDelivery
	}

	justDelivered := false
	if req.Status != nil {
		next := domain.OrderStatus(*req.Status)
		if next == domain.OrderDelivered && o.Status != domain.OrderDelivered {
			justDelivered = true
			now := time.Now()
			o.ActualDelivery = &now
		}
		o.Status = next
	}

	err = s.orders.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Save(o).Error; err != nil {
			return err
		}
		if req.Items != nil {
			if err := tx.Where("order_id = ?", o.ID).Delete(&domain.OrderProduct{}).Error; err != nil {
				return err
			}
			if err := createLineItems(tx, o.ID, req.Items); err != nil {
				return err
			}
		}
		if justDelivered {
			return archiveDeliveredPieces(tx, o.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, o.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func createLineItems(tx *gorm.DB, orderID string, items []LineItem) error {
	for _, item := range items {
		var count int64
		if err := tx.Model(&domain.Product{}).Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownProduct
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		line := &domain.OrderProduct{OrderID: orderID, ProductID: item.ProductID, Quantity: qty}
		if err := tx.Create(line).Error; err != nil {
			return err
		}
	}
	return nil
}

// archiveDeliveredPieces marks the order's non-custom products as archived
// and unavailable. Custom commissions never appear in the shop, so they are
// left alone.
func archiveDeliveredPieces(tx *gorm.DB, orderID string) error {
	return tx.Model(&domain.Product{}).
		Where("id IN (?)", tx.Session(&gorm.Session{NewDB: true}).
			Model(&domain.OrderProduct{}).
			Select("product_id").
			Where("order_id = ?", orderID)).
		Where("is_custom = ?", false).
		Updates(map[string]any{
			"status":       domain.ProductArchived,
			"is_available": false,
		}).Error
}
