package contact

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"alienic/internal/domain"
	"alienic/internal/pkg/response"
	"alienic/internal/pkg/validator"
	"alienic/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	if public != nil {
		public.POST("/contact", h.Submit)
	}
	if admin != nil {
		admin.GET("/messages", h.List)
		admin.PATCH("/messages/:id", h.UpdateStatus)
		admin.DELETE("/messages/:id", h.Delete)
	}
}

// Submit handles the public contact form.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "Validation failed", fields)
		return
	}

	if _, err := h.svc.Submit(c.Request.Context(), req); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to send message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"status": "sent"})
}

// List returns the paginated admin inbox.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}

	f := repository.MessageFilters{
		Search:    c.Query("search"),
		Status:    domain.MessageStatus(c.Query("status")),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}

	messages, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to fetch messages")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Messages: messages,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// UpdateStatus overwrites the message status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request body")
		return
	}

	err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), domain.MessageStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid status")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to update message")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "Failed to delete message")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}
