package stats

import (
	"context"

	"alienic/internal/domain"
	"alienic/internal/repository"
)

type Service struct {
	products      *repository.ProductRepository
	orders        *repository.OrderRepository
	messages      *repository.ContactMessageRepository
	testimonials  *repository.TestimonialRepository
	notifications *repository.NotificationRepository
}

func NewService(
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
	messages *repository.ContactMessageRepository,
	testimonials *repository.TestimonialRepository,
	notifications *repository.NotificationRepository,
) *Service {
	return &Service{
		products:      products,
		orders:        orders,
		messages:      messages,
		testimonials:  testimonials,
		notifications: notifications,
	}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	ordersToday, err := s.orders.CountToday(ctx)
	if err != nil {
		return nil, err
	}
	newMessages, err := s.messages.CountByStatus(ctx, domain.MessageNew)
	if err != nil {
		return nil, err
	}
	pending, err := s.testimonials.CountByStatus(ctx, domain.TestimonialPending)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifications.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Products:            products,
		Orders:              orders,
		OrdersToday:         ordersToday,
		NewMessages:         newMessages,
		PendingTestimonials: pending,
		UnreadNotifications: unread,
	}, nil
}
