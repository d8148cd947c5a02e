package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/errs"
)

type HTTPError struct {
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError attaches err to the context for request logging and writes the
// mapped status. Store failures never leak their cause to the caller.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, code := errs.HTTPStatus(err)

	body := HTTPError{
		Code:    code,
		Message: errs.Hint(err, "An unexpected error occurred"),
	}
	if errs.IsValidation(err) || errs.IsRateLimited(err) {
		body.Details = errs.Details(err)
	}

	c.JSON(status, body)
}
