package order

import (
	"errors"
	"net/http"

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
	admin.GET("/orders", h.List)
	admin.GET("/orders/:id", h.Get)
	admin.POST("/orders", h.Create)
	admin.PUT("/orders/:id", h.Update)
	admin.DELETE("/orders/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "unknown order status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load orders")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Orders: orders, Total: len(orders)})
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load order")
		return
	}
	response.Success(c, http.StatusOK, o)
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

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "line item references unknown product")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to create order")
		return
	}
	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	o, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrUnknownProduct):
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid order update")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to update order")
		}
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to delete order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
