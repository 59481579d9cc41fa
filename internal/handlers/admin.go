// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/turhanbey/presetshop-backend/internal/i18n"
	"github.com/turhanbey/presetshop-backend/internal/services"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

type AdminHandler struct {
	settingsService *services.SettingsService
	orderService    *services.OrderService
	catalogService  *services.CatalogService
}

func NewAdminHandler(settingsService *services.SettingsService, orderService *services.OrderService, catalogService *services.CatalogService) *AdminHandler {
	return &AdminHandler{
		settingsService: settingsService,
		orderService:    orderService,
		catalogService:  catalogService,
	}
}

// GetSettings handles GET /v1/admin/settings
// The admin view returns the unmasked record.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch settings")
		return
	}

	utils.SuccessResponse(c, settings)
}

// SaveSettings handles PUT /v1/admin/settings
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req services.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	settings, err := h.settingsService.Save(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"settings": settings,
		"message":  i18n.T(lang, i18n.KeySettingsSaved),
	})
}

// DashboardStats handles GET /v1/admin/dashboard/stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.orderService.Stats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch stats")
		return
	}

	if count, err := h.catalogService.Count(); err == nil {
		stats.TotalProducts = count
	}

	utils.SuccessResponse(c, stats)
}
