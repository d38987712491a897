package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sankofamarket/catalog-api/internal/catalog"
	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/service"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

// CatalogAdminHandler serves the authenticated catalog management endpoints.
type CatalogAdminHandler struct {
	catalogService    *service.CatalogService
	moderationService *service.ModerationService
}

// NewCatalogAdminHandler constructs a CatalogAdminHandler.
func NewCatalogAdminHandler(catalogService *service.CatalogService, moderationService *service.ModerationService) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		catalogService:    catalogService,
		moderationService: moderationService,
	}
}

// CreateProduct handles POST /v1/admin/products
func (h *CatalogAdminHandler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCategoryRef) {
			utils.Error(c, 400, "INVALID_CATEGORY_REFERENCE", "Category reference does not resolve")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}

	utils.Success(c, 201, "Product created successfully", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *CatalogAdminHandler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		if errors.Is(err, utils.ErrInvalidCategoryRef) {
			utils.Error(c, 400, "INVALID_CATEGORY_REFERENCE", "Category reference does not resolve")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		return
	}

	utils.Success(c, 200, "Product updated successfully", product)
}

// UpdateProductStock handles PUT /v1/admin/products/:id/stock
func (h *CatalogAdminHandler) UpdateProductStock(c *gin.Context) {
	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProductStock(c.Request.Context(), c.Param("id"), req.StockQuantity)
	if err != nil {
		if errors.Is(err, catalog.ErrNegativeStock) {
			utils.Error(c, 400, "NEGATIVE_STOCK", "Stock quantity cannot be negative")
			return
		}
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update stock")
		return
	}

	utils.Success(c, 200, "Stock updated successfully", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
//
// Deletion is idempotent: removing an id that is already gone succeeds.
func (h *CatalogAdminHandler) DeleteProduct(c *gin.Context) {
	removed, err := h.catalogService.RemoveProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}

	utils.Success(c, 200, "Product deleted successfully", gin.H{"removed": removed})
}

// ModerateProduct handles POST /v1/admin/products/:id/moderate
func (h *CatalogAdminHandler) ModerateProduct(c *gin.Context) {
	product := h.catalogService.ProductByID(c.Param("id"))
	if product == nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	result, err := h.moderationService.ModerateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, utils.ErrModerationDisabled) {
			utils.Error(c, 503, "MODERATION_DISABLED", "Image moderation is not configured")
			return
		}
		if errors.Is(err, utils.ErrModerationFetchFail) {
			utils.Error(c, 422, "MODERATION_IMAGE_FETCH_FAILED", "Could not fetch product images")
			return
		}
		utils.Error(c, 502, "MODERATION_PROVIDER_ERROR", "Moderation provider request failed")
		return
	}

	if result.Flagged {
		h.catalogService.FlagProduct(product)
	}

	utils.Success(c, 200, "Moderation completed", result)
}
