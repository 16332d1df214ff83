package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"alienic/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxUploadSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Handler stores admin-uploaded product and collection images on local disk
// and serves them back under /uploads.
type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, admin *gin.RouterGroup) {
	router.Static("/uploads", h.dir)
	admin.POST("/upload/product-image", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "missing file field")
		return
	}
	if file.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "file exceeds 10MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "unsupported file type")
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", h.dir).Msg("upload dir unavailable")
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to store file")
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Error().Err(err).Str("path", dst).Msg("failed to save upload")
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "failed to store file")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"filename": name,
		"url":      fmt.Sprintf("/uploads/%s", name),
	})
}
