package catalog

import (
	"errors"
	"net/http"

	"alienic/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/home", h.Home)
	public.GET("/shop", h.Shop)
	public.GET("/gallery", h.Gallery)
	public.GET("/collections", h.Collections)
	public.GET("/collections/:slug", h.CollectionBySlug)
}

func (h *Handler) Home(c *gin.Context) {
	home, err := h.service.Home(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load homepage")
		return
	}
	response.Success(c, http.StatusOK, home)
}

func (h *Handler) Shop(c *gin.Context) {
	products, err := h.service.Shop(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load shop")
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *Handler) Gallery(c *gin.Context) {
	products, err := h.service.Gallery(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load gallery")
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *Handler) Collections(c *gin.Context) {
	collections, err := h.service.Collections(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load collections")
		return
	}
	response.Success(c, http.StatusOK, collections)
}

func (h *Handler) CollectionBySlug(c *gin.Context) {
	col, err := h.service.CollectionBySlug(c.Request.Context(), c.Param("slug"))
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
