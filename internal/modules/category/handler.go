package category

import (
	"errors"
	"net/http"
	"strconv"

	"alienic/internal/pkg/response"
	"alienic/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/categories", h.ListPublic)

	admin.GET("/categories", h.List)
	admin.POST("/categories", h.Create)
	admin.PATCH("/categories/:id", h.Update)
	admin.DELETE("/categories/:id", h.Delete)
}

func (h *Handler) ListPublic(c *gin.Context) {
	categories, _, err := h.service.List(c.Request.Context(), "", 100, 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}

	categories, total, err := h.service.List(c.Request.Context(), c.Query("search"), pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{
		Categories: categories,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", details)
		return
	}

	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "INVALID_INPUT", "slug already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	cat, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to update category")
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrInUse):
			response.Error(c, http.StatusConflict, "INVALID_INPUT", "category still has products")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "category not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to delete category")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
