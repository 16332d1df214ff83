package testimonial

import (
	"errors"
	"net/http"
	"strconv"

	"alienic/internal/domain"
	"alienic/internal/pkg/response"
	"alienic/internal/pkg/validator"
	"alienic/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/testimonials", h.Submit)
	public.GET("/testimonials", h.ListPublic)

	admin.GET("/testimonials", h.List)
	admin.PATCH("/testimonials/:id", h.Update)
	admin.DELETE("/testimonials/:id", h.Delete)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", details)
		return
	}

	t, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "rating must be between 1 and 5")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to save testimonial")
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) ListPublic(c *gin.Context) {
	items, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load testimonials")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}

	f := repository.TestimonialFilters{
		Search: c.Query("search"),
		Status: domain.TestimonialStatus(c.Query("status")),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	items, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "unknown testimonial status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load testimonials")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{
		Testimonials: items,
		Total:        total,
		Page:         page,
		PageSize:     f.Limit,
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid testimonial update")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "testimonial not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to update testimonial")
		}
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "testimonial not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to delete testimonial")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
