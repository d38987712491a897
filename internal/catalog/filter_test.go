package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
)

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	return ids
}

func TestDefaultFilterStatePassesEverything(t *testing.T) {
	products := repository.SeedProducts()

	out := ApplyFilters(products, NewFilterState(), "")

	assert.Equal(t, productIDs(products), productIDs(out))
}

func TestCategoryNarrowing(t *testing.T) {
	f := NewFilterState()
	f.Categories = []string{"1"}

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"1", "2", "3"}, productIDs(out))
}

func TestFiltersCombineWithAND(t *testing.T) {
	f := NewFilterState()
	f.Categories = []string{"1"}
	f.Types = []string{"1-1-2"}
	f.InStock = true

	out := ApplyFilters(repository.SeedProducts(), f, "")
	assert.Equal(t, []string{"2", "3"}, productIDs(out))

	// tightening one dimension narrows the conjunction further
	f.PriceMax = 42
	out = ApplyFilters(repository.SeedProducts(), f, "")
	assert.Equal(t, []string{"2"}, productIDs(out))
}

func TestPriceBandIsInclusive(t *testing.T) {
	f := NewFilterState()
	f.PriceMin = 24
	f.PriceMax = 35

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"4", "5", "6", "7"}, productIDs(out))
}

func TestSearchMatchesNameDescriptionAndTags(t *testing.T) {
	products := repository.SeedProducts()

	out := ApplyFilters(products, NewFilterState(), "Kente")
	assert.Equal(t, []string{"1", "4"}, productIDs(out))

	// tag match
	out = ApplyFilters(products, NewFilterState(), "skincare")
	assert.Equal(t, []string{"5", "6"}, productIDs(out))

	// description match
	out = ApplyFilters(products, NewFilterState(), "elephant grass")
	assert.Equal(t, []string{"7"}, productIDs(out))
}

func TestSearchCombinesWithFilters(t *testing.T) {
	f := NewFilterState()
	f.InStock = true

	out := ApplyFilters(repository.SeedProducts(), f, "skincare")

	// product 6 matches the search but is out of stock
	assert.Equal(t, []string{"5"}, productIDs(out))
}

func TestVendorFilterIsCaseInsensitive(t *testing.T) {
	f := NewFilterState()
	f.Vendors = []string{"adwoa TEXTILES"}

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"1", "3"}, productIDs(out))
}

func TestProductionMethodFilterIsCaseInsensitive(t *testing.T) {
	f := NewFilterState()
	f.ProductionMethods = []string{"Handwoven"}

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"1", "4", "7"}, productIDs(out))
}

func TestInStockToggleExcludesOutOfStock(t *testing.T) {
	f := NewFilterState()
	f.InStock = true

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.NotContains(t, productIDs(out), "6")
	assert.Len(t, out, 7)
}

func TestOnSaleToggle(t *testing.T) {
	f := NewFilterState()
	f.OnSale = true

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"3", "6"}, productIDs(out))
}

func TestMinRatingThreshold(t *testing.T) {
	f := NewFilterState()
	f.MinRating = 4.7

	out := ApplyFilters(repository.SeedProducts(), f, "")

	assert.Equal(t, []string{"1", "3", "4"}, productIDs(out))
}

func TestResetRestoresFullView(t *testing.T) {
	products := repository.SeedProducts()

	f := NewFilterState()
	f.Categories = []string{"3"}
	f.InStock = true
	f.PriceMax = 25
	narrowed := ApplyFilters(products, f, "")
	require.Less(t, len(narrowed), len(products))

	f.Reset()
	restored := ApplyFilters(products, f, "")
	assert.Equal(t, productIDs(products), productIDs(restored))
	assert.Equal(t, NewFilterState(), f)
}

func TestUnknownVendorBucketIsFilterable(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "No Vendor", Price: 10, InStock: true},
		{ID: "b", Name: "Named", Price: 10, Vendor: models.VendorRef{Name: "Amara Beads"}, InStock: true},
	}

	f := NewFilterState()
	f.Vendors = []string{models.UnknownVendorName}

	out := ApplyFilters(products, f, "")
	assert.Equal(t, []string{"a"}, productIDs(out))
}

func TestFingerprintIsDeterministic(t *testing.T) {
	f := NewFilterState()
	f.Categories = []string{"1", "2"}
	f.InStock = true

	g := NewFilterState()
	g.Categories = []string{"1", "2"}
	g.InStock = true

	assert.Equal(t, f.Fingerprint(), g.Fingerprint())
	assert.NotEqual(t, NewFilterState().Fingerprint(), f.Fingerprint())
}
