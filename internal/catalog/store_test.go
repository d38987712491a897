package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(repository.SeedProducts(), repository.SeedCategories())
}

func TestAddProductAssignsIdentityAndDerivesStock(t *testing.T) {
	s := seededStore(t)

	p := s.AddProduct(models.ProductDraft{
		Name:             "Mudcloth Throw Pillow",
		Price:            28,
		Rating:           4.3,
		Vendor:           models.VendorRef{Name: "Tamale Weavers"},
		CategoryID:       "4",
		SubCategoryID:    "4-1",
		StockQuantity:    6,
		ProductionMethod: models.ProductionHandmade,
	})

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.True(t, p.InStock)
	assert.Equal(t, 6, p.StockQuantity)
	assert.Equal(t, models.ProductStatusActive, p.Status)
	assert.Equal(t, 4.3, p.Rating)
	assert.Equal(t, 9, s.Count())

	stored := s.ProductByID(p.ID)
	require.NotNil(t, stored)
	assert.Equal(t, p.Name, stored.Name)
}

func TestAddProductZeroStockIsOutOfStock(t *testing.T) {
	s := seededStore(t)

	p := s.AddProduct(models.ProductDraft{Name: "Backordered Stool", CategoryID: "4"})

	assert.False(t, p.InStock)
	assert.Equal(t, 0, p.StockQuantity)
}

func TestUpdateProductStockKeepsFlagConsistent(t *testing.T) {
	s := seededStore(t)

	p, ok, err := s.UpdateProductStock("1", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, p.InStock)
	assert.Equal(t, 0, p.StockQuantity)

	p, ok, err = s.UpdateProductStock("1", 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, p.InStock)
	assert.Equal(t, 7, p.StockQuantity)
}

func TestUpdateProductStockRejectsNegative(t *testing.T) {
	s := seededStore(t)
	before := s.ProductByID("1")
	require.NotNil(t, before)

	_, _, err := s.UpdateProductStock("1", -3)
	assert.ErrorIs(t, err, ErrNegativeStock)

	after := s.ProductByID("1")
	require.NotNil(t, after)
	assert.Equal(t, before.StockQuantity, after.StockQuantity)
	assert.Equal(t, before.InStock, after.InStock)
}

func TestUpdateProductStockUnknownID(t *testing.T) {
	s := seededStore(t)

	_, ok, err := s.UpdateProductStock("no-such-id", 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProductMergesOnlyPatchedFields(t *testing.T) {
	s := seededStore(t)
	name := "Kente Royal Dress II"
	price := 40.0

	p, ok := s.UpdateProduct("1", models.ProductPatch{Name: &name, Price: &price})
	require.True(t, ok)
	assert.Equal(t, name, p.Name)
	assert.Equal(t, price, p.Price)
	// untouched fields keep their values
	assert.Equal(t, "Adwoa Textiles", p.Vendor.DisplayName())
	assert.Equal(t, 14, p.StockQuantity)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
}

func TestUpdateProductUnknownID(t *testing.T) {
	s := seededStore(t)

	_, ok := s.UpdateProduct("no-such-id", models.ProductPatch{})
	assert.False(t, ok)
}

func TestRemoveProductIsIdempotent(t *testing.T) {
	s := seededStore(t)

	assert.True(t, s.RemoveProduct("7"))
	assert.Equal(t, 7, s.Count())
	assert.Nil(t, s.ProductByID("7"))

	// second removal of the same id is a no-op
	assert.False(t, s.RemoveProduct("7"))
	assert.Equal(t, 7, s.Count())
}

func TestMutationsBumpRevision(t *testing.T) {
	s := seededStore(t)
	rev := s.Revision()

	s.AddProduct(models.ProductDraft{Name: "X", CategoryID: "1"})
	assert.Greater(t, s.Revision(), rev)

	rev = s.Revision()
	s.Replace(repository.SeedProducts(), repository.SeedCategories())
	assert.Greater(t, s.Revision(), rev)
}

func TestProductsReturnsCopy(t *testing.T) {
	s := seededStore(t)

	view := s.Products()
	view[0].Name = "mutated"

	assert.Equal(t, "Kente Royal Dress", s.ProductByID("1").Name)
}
