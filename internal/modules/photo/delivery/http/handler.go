package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/modules/photo/dto"
	photo "github.com/veeda241/DAC-website/internal/modules/photo/service"
	"github.com/veeda241/DAC-website/pkg/response"
	pkgvalidator "github.com/veeda241/DAC-website/pkg/validator"
)

type PhotoHandler struct {
	service photo.PhotoService
}

func NewPhotoHandler(service photo.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"photos": h.service.List()})
}

func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	var req dto.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
}
