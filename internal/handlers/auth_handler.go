package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/dto"
	"github.com/dieselmedia/booking-api/internal/httperr"
	"github.com/dieselmedia/booking-api/internal/httpresp"
	"github.com/dieselmedia/booking-api/internal/middleware"
	ucAuth "github.com/dieselmedia/booking-api/internal/usecase/auth"
)

type AuthHandler struct {
	login *ucAuth.Login
}

func NewAuthHandler(login *ucAuth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req ucAuth.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		Email:       res.Email,
	})
}

// Verify runs behind AuthMiddleware, so reaching it means the token is valid.
func (h *AuthHandler) Verify(c *gin.Context) {
	httpresp.OK(c, dto.VerifyResponse{
		Authenticated: true,
		Email:         middleware.AdminEmail(c),
	})
}
