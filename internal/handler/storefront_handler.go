package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sankofamarket/catalog-api/internal/catalog"
	"github.com/sankofamarket/catalog-api/internal/service"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

// StorefrontHandler serves the public catalog endpoints.
type StorefrontHandler struct {
	catalogService *service.CatalogService
}

// NewStorefrontHandler constructs a StorefrontHandler.
func NewStorefrontHandler(catalogService *service.CatalogService) *StorefrontHandler {
	return &StorefrontHandler{catalogService: catalogService}
}

// ListProducts handles GET /v1/store/products
//
// Filter dimensions arrive as repeatable query parameters (category,
// subcategory, type, method, vendor) plus scalar bounds (minPrice, maxPrice,
// minRating) and toggles (inStock, onSale). All active dimensions are combined
// with AND. Absent parameters leave their dimension pass-through.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	filters := catalog.NewFilterState()
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid filter parameters")
		return
	}
	if filters.PriceMax <= 0 {
		filters.PriceMax = catalog.DefaultPriceMax
	}

	q := catalog.Query{
		Filters: filters,
		Sort:    catalog.ParseSortOption(c.Query("sort")),
		Search:  c.Query("search"),
	}

	view, total, filtered := h.catalogService.QueryProducts(q)

	page, limit := parsePagination(c)
	start := (page - 1) * limit
	if start > len(view) {
		start = len(view)
	}
	end := start + limit
	if end > len(view) {
		end = len(view)
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", gin.H{
		"products":      view[start:end],
		"totalProducts": total,
		"filteredCount": filtered,
	}, page, limit, filtered)
}

// GetProduct handles GET /v1/store/products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product := h.catalogService.ProductByID(c.Param("id"))
	if product == nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// ListCategories handles GET /v1/store/categories
func (h *StorefrontHandler) ListCategories(c *gin.Context) {
	utils.Success(c, 200, "Categories retrieved", h.catalogService.Categories(c.Request.Context()))
}

// GetCategoryTypes handles GET /v1/store/categories/:id/types
//
// Returns the category's types in hierarchy order, each with its product
// count over the full catalog.
func (h *StorefrontHandler) GetCategoryTypes(c *gin.Context) {
	id := c.Param("id")
	if h.catalogService.CategoryByID(id) == nil {
		utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}
	utils.Success(c, 200, "Category types retrieved", h.catalogService.TypesWithProductCounts(id))
}

// GetFilterMetadata handles GET /v1/store/filters
func (h *StorefrontHandler) GetFilterMetadata(c *gin.Context) {
	utils.Success(c, 200, "Filter metadata retrieved", h.catalogService.FilterMetadata(c.Request.Context()))
}

// ListVendors handles GET /v1/store/vendors
func (h *StorefrontHandler) ListVendors(c *gin.Context) {
	vendors := h.catalogService.Vendors()
	utils.Success(c, 200, "Vendors retrieved", gin.H{
		"vendors": vendors,
		"total":   len(vendors),
	})
}

// GetPopularTypes handles GET /v1/store/types/popular
func (h *StorefrontHandler) GetPopularTypes(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	utils.Success(c, 200, "Popular types retrieved", h.catalogService.PopularTypes(limit))
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, limit = 1, 12
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return page, limit
}
