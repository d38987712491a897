package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
)

func TestVendorsDistinctFirstSeen(t *testing.T) {
	vendors := Vendors(repository.SeedProducts())

	assert.Equal(t, []string{
		"Adwoa Textiles",
		"Nana Couture",
		"Kofi & Sons",
		"Abena Naturals",
		"Tamale Weavers",
		"Amara Beads",
	}, vendors)
}

func TestVendorsBucketsMalformedAsUnknown(t *testing.T) {
	products := []models.Product{
		{ID: "a", Vendor: models.VendorRef{}},
		{ID: "b", Vendor: models.VendorRef{Name: "Amara Beads"}},
		{ID: "c", Vendor: models.VendorRef{}},
	}

	vendors := Vendors(products)

	assert.Equal(t, []string{models.UnknownVendorName, "Amara Beads"}, vendors)
}

func TestPriceRangeSpansCollection(t *testing.T) {
	r := PriceRange(repository.SeedProducts())

	assert.Equal(t, 20.0, r.Min)
	assert.Equal(t, 45.0, r.Max)
}

func TestPriceRangeEmptyCollection(t *testing.T) {
	assert.Equal(t, models.PriceRangeData{}, PriceRange(nil))
}

func TestAvailabilityCounts(t *testing.T) {
	a := Availability(repository.SeedProducts())

	assert.Equal(t, 7, a.InStock)
	assert.Equal(t, 1, a.OutOfStock)
}

func TestTypesWithProductCounts(t *testing.T) {
	products := repository.SeedProducts()
	ix := NewIndex(repository.SeedCategories())

	counts := TypesWithProductCounts(products, ix, "1")

	require.Len(t, counts, 3)
	assert.Equal(t, models.TypeProductCount{ID: "1-1-1", Name: "Kente Dresses", ProductCount: 1}, counts[0])
	assert.Equal(t, models.TypeProductCount{ID: "1-1-2", Name: "Ankara Dresses", ProductCount: 2}, counts[1])
	assert.Equal(t, models.TypeProductCount{ID: "1-2-1", Name: "Printed Blouses", ProductCount: 0}, counts[2])
}

func TestPopularTypesOrderAndLimit(t *testing.T) {
	products := repository.SeedProducts()
	ix := NewIndex(repository.SeedCategories())

	top := PopularTypes(products, ix, 3)

	require.Len(t, top, 3)
	// highest count first, then ties in hierarchy order
	assert.Equal(t, "1-1-2", top[0].ID)
	assert.Equal(t, 2, top[0].ProductCount)
	assert.Equal(t, "1-1-1", top[1].ID)
	assert.Equal(t, "2-1-1", top[2].ID)
}

func TestPopularTypesDefaultLimit(t *testing.T) {
	products := repository.SeedProducts()
	ix := NewIndex(repository.SeedCategories())

	top := PopularTypes(products, ix, 0)

	// the whole tree has 8 types, all within the default limit of 10
	assert.Len(t, top, 8)
}
