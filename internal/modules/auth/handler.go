package auth

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

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/admin/login", h.Login)
	admin.GET("/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_INPUT", "validation failed", details)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to sign in")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Me(c *gin.Context) {
	adminID := c.GetString("admin_id")
	if adminID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing credentials")
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "account no longer exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, profile)
}
