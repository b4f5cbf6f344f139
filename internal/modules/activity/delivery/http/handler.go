package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/internal/state"
)

// ActivityHandler exposes the append-only activity feed. There is no
// mutation surface: entries are recorded as a side effect of other
// operations and survive logout.
type ActivityHandler struct {
	club *state.Club
}

func NewActivityHandler(club *state.Club) *ActivityHandler {
	return &ActivityHandler{club: club}
}

func (h *ActivityHandler) ListActivity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity": h.club.Activity()})
}
