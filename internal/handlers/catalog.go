// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/turhanbey/presetshop-backend/internal/i18n"
	"github.com/turhanbey/presetshop-backend/internal/models"
	"github.com/turhanbey/presetshop-backend/internal/services"
	"github.com/turhanbey/presetshop-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

// productView adds the storefront display label to a catalog listing.
type productView struct {
	models.Product
	CategoryLabel string `json:"category_label"`
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProducts handles GET /v1/products?category=
// An empty or "all" category returns the whole catalog.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	products, err := h.catalogService.FilterByCategory(category)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, CategoryLabel: p.CategoryLabel()})
	}

	utils.SuccessResponse(c, views)
}

// CreateProduct handles POST /v1/admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	product, err := h.catalogService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductCreated),
	})
}

// DeleteProduct handles DELETE /v1/admin/products/:id
// Deleting an unknown id succeeds; the catalog simply no longer contains it.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// handleServiceError maps the service sentinel errors onto HTTP responses.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(fieldErrs))
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidPIN):
		lang := utils.GetLangFromContext(c)
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidPIN))
	default:
		utils.InternalErrorResponse(c, "")
	}
}
