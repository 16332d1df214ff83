package product

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/products", h.List)
	admin.GET("/products/:id", h.Get)
	admin.POST("/products", h.Create)
	admin.PUT("/products/:id", h.Update)
	admin.POST("/products/:id/move-to-gallery", h.MoveToGallery)
	admin.DELETE("/products/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}

	f := repository.ProductFilters{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CategoryID: c.Query("categoryId"),
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	}

	products, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load products")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: f.Limit,
	})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load product")
		return
	}
	response.Success(c, http.StatusOK, p)
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

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusConflict, "INVALID_INPUT", "slug already in use")
		case errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid product")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to create product")
		}
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid product update")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to update product")
		}
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) MoveToGallery(c *gin.Context) {
	p, err := h.service.MoveToGallery(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to move product to gallery")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to delete product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
