package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/httperr"
)

const ContextAdminEmail = "adminEmail"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware requires a valid bearer token. Missing and invalid
// credentials both answer 401; the error code tells them apart.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Authorization header must be: Bearer <token>")
			return
		}

		email, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(ContextAdminEmail, email)
		c.Next()
	}
}

// AdminEmail returns the identity set by AuthMiddleware.
func AdminEmail(c *gin.Context) string {
	return c.GetString(ContextAdminEmail)
}
