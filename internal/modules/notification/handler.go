package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alienic/internal/domain"
	"alienic/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	group := admin.Group("/notifications")
	{
		group.GET("", h.Feed)
		group.GET("/history", h.History)
		group.POST("", h.Dispatch)
		group.POST("/detail", h.Detail)
	}
}

// Feed returns the unread feed for the polling badge/dropdown.
func (h *Handler) Feed(c *gin.Context) {
	feed, err := h.service.Feed(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch notifications")
		return
	}
	response.Success(c, http.StatusOK, feed)
}

// History returns the paginated full notification log.
func (h *Handler) History(c *gin.Context) {
	var req HistoryRequest
	// Accept both an empty body and {limit, offset}.
	_ = c.ShouldBindJSON(&req)
	if req.Limit == 0 {
		req.Limit = 50
	}

	history, err := h.service.History(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch notification history")
		return
	}
	response.Success(c, http.StatusOK, history)
}

// Dispatch routes the mutation actions: markRead, markAllRead,
// markMessageRead, approveTestimonial, rejectTestimonial.
func (h *Handler) Dispatch(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	var err error

	switch req.Action {
	case "markRead":
		err = h.service.MarkRead(ctx, req.ID)
	case "markAllRead":
		err = h.service.MarkAllRead(ctx)
	case "markMessageRead":
		err = h.service.MarkMessageRead(ctx, req.MessageID)
	case "approveTestimonial":
		err = h.service.ApproveTestimonial(ctx, req.ID)
	case "rejectTestimonial":
		err = h.service.RejectTestimonial(ctx, req.ID)
	default:
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Unknown action")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Missing or invalid id")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Action failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

// Detail resolves the entity a notification references.
func (h *Handler) Detail(c *gin.Context) {
	var req DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	entity, err := h.service.Detail(c.Request.Context(), req.NotificationID, domain.NotificationType(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid notification type")
		case errors.Is(err, ErrNoReference), errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No reference found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch detail")
		}
		return
	}

	response.Success(c, http.StatusOK, entity)
}
