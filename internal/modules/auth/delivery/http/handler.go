package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/modules/auth/dto"
	auth "github.com/veeda241/DAC-website/internal/modules/auth/service"
	"github.com/veeda241/DAC-website/pkg/response"
	pkgvalidator "github.com/veeda241/DAC-website/pkg/validator"
)

type AuthHandler struct {
	service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(middleware.CurrentUser(c))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
