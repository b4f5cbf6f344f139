package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veeda241/DAC-website/pkg/apperror"
)

// Error writes the standardized error body for err.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
