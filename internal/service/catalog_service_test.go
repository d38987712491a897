package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/cache"
	"github.com/sankofamarket/catalog-api/internal/catalog"
	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
	"github.com/sankofamarket/catalog-api/internal/sse"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

func newTestCatalogService(t *testing.T) (*CatalogService, *repository.MemoryProductRepository) {
	t.Helper()
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	categoryRepo := repository.NewMemoryCategoryRepository(repository.SeedCategories())

	svc, err := NewCatalogService(productRepo, categoryRepo, cache.NewCatalogCache(nil, 0), sse.NewHub())
	require.NoError(t, err)
	return svc, productRepo
}

func TestCatalogServiceHydratesFromRepositories(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	assert.Equal(t, 8, svc.ProductCount())
	require.NotNil(t, svc.ProductByID("1"))
	assert.Len(t, svc.Categories(context.Background()), 5)
}

func TestQueryProductsFiltersAndCounts(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	f := catalog.NewFilterState()
	f.Categories = []string{"1"}
	view, total, filtered := svc.QueryProducts(catalog.Query{Filters: f, Sort: catalog.SortPriceLowHigh})

	assert.Equal(t, 8, total)
	assert.Equal(t, 3, filtered)
	require.Len(t, view, 3)
	assert.Equal(t, "1", view[0].ID)
	assert.Equal(t, "3", view[2].ID)
}

func TestCreateProductValidatesClassification(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.CreateProduct(context.Background(), models.ProductDraft{
		Name: "Bad Ref", CategoryID: "99",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCategoryRef)

	// subcategory belonging to a different category is rejected
	_, err = svc.CreateProduct(context.Background(), models.ProductDraft{
		Name: "Crossed Refs", CategoryID: "1", SubCategoryID: "3-1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCategoryRef)

	// type without its subcategory is rejected
	_, err = svc.CreateProduct(context.Background(), models.ProductDraft{
		Name: "Dangling Type", CategoryID: "1", SubCategoryTypeID: "1-1-1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCategoryRef)
}

func TestCreateProductWritesThrough(t *testing.T) {
	svc, productRepo := newTestCatalogService(t)

	p, err := svc.CreateProduct(context.Background(), models.ProductDraft{
		Name:          "Adinkra Wall Hanging",
		Price:         48,
		Vendor:        models.VendorRef{Name: "Tamale Weavers"},
		CategoryID:    "4",
		SubCategoryID: "4-1",
		StockQuantity: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 9, svc.ProductCount())

	persisted, err := productRepo.Get(p.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Adinkra Wall Hanging", persisted.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	name := "x"

	_, err := svc.UpdateProduct(context.Background(), "no-such-id", models.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestUpdateProductRevalidatesMovedClassification(t *testing.T) {
	svc, _ := newTestCatalogService(t)
	badSub := "3-1"

	_, err := svc.UpdateProduct(context.Background(), "1", models.ProductPatch{SubCategoryID: &badSub})
	assert.ErrorIs(t, err, utils.ErrInvalidCategoryRef)
}

func TestUpdateProductStockWritesThrough(t *testing.T) {
	svc, productRepo := newTestCatalogService(t)

	p, err := svc.UpdateProductStock(context.Background(), "6", 15)
	require.NoError(t, err)
	assert.True(t, p.InStock)
	assert.Equal(t, 15, p.StockQuantity)

	persisted, err := productRepo.Get("6")
	require.NoError(t, err)
	assert.True(t, persisted.InStock)
	assert.Equal(t, 15, persisted.StockQuantity)
}

func TestUpdateProductStockRejectsNegative(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.UpdateProductStock(context.Background(), "1", -1)
	assert.ErrorIs(t, err, catalog.ErrNegativeStock)
}

func TestRemoveProductIsIdempotent(t *testing.T) {
	svc, productRepo := newTestCatalogService(t)

	removed, err := svc.RemoveProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 7, svc.ProductCount())

	persisted, err := productRepo.Get("2")
	require.NoError(t, err)
	assert.Nil(t, persisted)

	removed, err = svc.RemoveProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFilterMetadataShape(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	meta := svc.FilterMetadata(context.Background())
	require.NotNil(t, meta)
	assert.Equal(t, 7, meta.Availability.InStock)
	assert.Equal(t, 1, meta.Availability.OutOfStock)
	assert.Equal(t, 20.0, meta.PriceRange.Min)
	assert.Equal(t, 45.0, meta.PriceRange.Max)
	assert.Len(t, meta.Vendors, 6)
	assert.Len(t, meta.Categories, 5)
	assert.Len(t, meta.ProductionMethods, 4)
}

func TestTypesWithProductCounts(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	counts := svc.TypesWithProductCounts("1")

	require.Len(t, counts, 3)
	assert.Equal(t, 2, counts[1].ProductCount)
}

func TestRefreshPicksUpRepositoryWrites(t *testing.T) {
	svc, productRepo := newTestCatalogService(t)

	require.NoError(t, productRepo.Upsert(&models.Product{
		ID: "out-of-band", Name: "Imported", Price: 5, CategoryID: "1",
	}))
	assert.Nil(t, svc.ProductByID("out-of-band"))

	require.NoError(t, svc.Refresh(context.Background()))
	assert.NotNil(t, svc.ProductByID("out-of-band"))
	assert.Equal(t, 9, svc.ProductCount())
}
