package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/modules/event/dto"
	event "github.com/veeda241/DAC-website/internal/modules/event/service"
	"github.com/veeda241/DAC-website/pkg/response"
	pkgvalidator "github.com/veeda241/DAC-website/pkg/validator"
)

type EventHandler struct {
	service event.EventService
}

func NewEventHandler(service event.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Query("search")))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
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

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
}
