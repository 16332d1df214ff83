package collection

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/collections", h.List)
	admin.GET("/collections/:id", h.Get)
	admin.POST("/collections", h.Create)
	admin.PATCH("/collections/:id", h.Update)
	admin.DELETE("/collections/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}

	collections, total, err := h.service.List(c.Request.Context(), c.Query("search"), pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load collections")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{
		Collections: collections,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	})
}

func (h *Handler) Get(c *gin.Context) {
	col, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load collection")
		return
	}
	response.Success(c, http.StatusOK, col)
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

	col, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "INVALID_INPUT", "slug already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to create collection")
		return
	}
	response.Success(c, http.StatusCreated, col)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	col, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to update collection")
		return
	}
	response.Success(c, http.StatusOK, col)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "collection not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to delete collection")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
