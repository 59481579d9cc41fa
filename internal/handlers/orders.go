// internal/handlers/orders.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turhanbey/presetshop-backend/internal/i18n"
	"github.com/turhanbey/presetshop-backend/internal/services"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

type OrderHandler struct {
	orderService    *services.OrderService
	settingsService *services.SettingsService
	storageService  *services.StorageService
}

func NewOrderHandler(orderService *services.OrderService, settingsService *services.SettingsService, storageService *services.StorageService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		settingsService: settingsService,
		storageService:  storageService,
	}
}

// Checkout handles POST /v1/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	result, err := h.orderService.Checkout(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"order":        result.Order,
		"telegram_url": result.TelegramURL,
		"message":      i18n.T(lang, i18n.KeyOrderCheckoutThanks),
	})
}

// PaymentMethods handles GET /v1/checkout/payment-methods
// Addresses are masked; the full values never leave the admin surface.
func (h *OrderHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.settingsService.ConfiguredMethods()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch payment methods")
		return
	}

	utils.SuccessResponse(c, methods)
}

// ListOrders handles GET /v1/admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListPage(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// ConfirmOrder handles PUT /v1/admin/orders/:id/confirm
// Confirming an unknown order is not an error; the response carries a
// confirmed flag instead.
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	confirmed, err := h.orderService.Confirm(id)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to confirm order")
		return
	}

	lang := utils.GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyOrderConfirmed)
	if !confirmed {
		message = i18n.T(lang, i18n.KeyOrderNotFound)
	}

	utils.SuccessResponse(c, gin.H{
		"confirmed": confirmed,
		"message":   message,
	})
}

// DeleteOrder handles DELETE /v1/admin/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete order")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderDeleted),
	})
}

// DownloadLink handles GET /v1/admin/orders/:id/download-link
// Only confirmed orders whose product still carries a stored file get a link.
func (h *OrderHandler) DownloadLink(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)

	if !order.Confirmed() {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderNotConfirmed), nil)
		return
	}

	product, err := h.orderService.ProductForOrder(order)
	if err != nil || product.DownloadKey == "" {
		utils.NotFoundResponse(c, "order")
		return
	}

	url, err := h.storageService.DownloadURL(product.DownloadKey)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyOrderNoDownload))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"download_url": url,
		"expires_in":   h.storageService.DownloadTTLSeconds(),
	})
}
