package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/httperr"
)

// bindJSON decodes the body into dst and answers 400 on malformed JSON.
// Field rules are checked by the use cases.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body must be valid JSON")
		return false
	}
	return true
}
