// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/turhanbey/presetshop-backend/internal/i18n"
	"github.com/turhanbey/presetshop-backend/internal/services"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	auth, err := h.authService.Login(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"auth":    auth,
		"message": i18n.T(lang, i18n.KeyAuthLoginSuccess),
	})
}

// Logout handles POST /v1/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err != nil {
		utils.InternalErrorResponse(c, "Failed to log out")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}

// Session handles GET /v1/admin/session
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authService.Session()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"login_at": session.LoginAt,
	})
}
