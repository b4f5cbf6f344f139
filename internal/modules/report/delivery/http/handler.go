package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/modules/report/dto"
	report "github.com/veeda241/DAC-website/internal/modules/report/service"
	"github.com/veeda241/DAC-website/pkg/response"
	pkgvalidator "github.com/veeda241/DAC-website/pkg/validator"
)

type ReportHandler struct {
	service report.ReportService
}

func NewReportHandler(service report.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": h.service.List()})
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
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

func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted successfully"})
}
