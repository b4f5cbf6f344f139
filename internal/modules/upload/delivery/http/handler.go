package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	upload "github.com/veeda241/DAC-website/internal/modules/upload/service"
	"github.com/veeda241/DAC-website/pkg/response"
)

type UploadHandler struct {
	service upload.UploadService
}

func NewUploadHandler(service upload.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	folder := c.DefaultPostForm("folder", "gallery")

	resp, err := h.service.Upload(c.Request.Context(), folder, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
