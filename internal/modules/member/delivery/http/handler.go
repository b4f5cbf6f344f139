package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/middleware"
	"github.com/veeda241/DAC-website/internal/modules/member/dto"
	member "github.com/veeda241/DAC-website/internal/modules/member/service"
	"github.com/veeda241/DAC-website/pkg/response"
	pkgvalidator "github.com/veeda241/DAC-website/pkg/validator"
)

type MemberHandler struct {
	service member.MemberService
}

func NewMemberHandler(service member.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

func (h *MemberHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.service.ListUsers()})
}

func (h *MemberHandler) ListTeam(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"team": h.service.Team()})
}

func (h *MemberHandler) ListMentors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mentors": h.service.Mentors()})
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	actor := middleware.CurrentUser(c)
	targetID := c.Param("id")
	if targetID == "" && actor != nil {
		targetID = actor.ID
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), actor, targetID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *MemberHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	updated, err := h.service.ChangeRole(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *MemberHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}
