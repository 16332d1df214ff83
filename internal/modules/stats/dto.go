package stats

// DashboardResponse feeds the admin dashboard header cards.
type DashboardResponse struct {
	Products            int64 `json:"products"`
	Orders              int64 `json:"orders"`
	OrdersToday         int64 `json:"orders_today"`
	NewMessages         int64 `json:"new_messages"`
	PendingTestimonials int64 `json:"pending_testimonials"`
	UnreadNotifications int64 `json:"unread_notifications"`
}
