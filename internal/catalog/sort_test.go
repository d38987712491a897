package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
)

func TestSortPriceLowHigh(t *testing.T) {
	out := SortProducts(repository.SeedProducts(), SortPriceLowHigh)

	assert.Equal(t, []string{"8", "5", "6", "7", "4", "1", "2", "3"}, productIDs(out))
}

func TestSortPriceHighLow(t *testing.T) {
	out := SortProducts(repository.SeedProducts(), SortPriceHighLow)

	assert.Equal(t, []string{"3", "2", "1", "4", "7", "6", "5", "8"}, productIDs(out))
}

func TestSortMostRecent(t *testing.T) {
	out := SortProducts(repository.SeedProducts(), SortMostRecent)

	assert.Equal(t, []string{"3", "1", "2", "8", "4", "5", "7", "6"}, productIDs(out))
}

func TestSortRating(t *testing.T) {
	out := SortProducts(repository.SeedProducts(), SortRating)

	assert.Equal(t, "3", out[0].ID)
	assert.Equal(t, "8", out[len(out)-1].ID)
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	when := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{ID: "a", Price: 30, UpdatedAt: when},
		{ID: "b", Price: 10, UpdatedAt: when},
		{ID: "c", Price: 30, UpdatedAt: when},
		{ID: "d", Price: 30, UpdatedAt: when},
	}

	out := SortProducts(products, SortPriceLowHigh)

	// equal prices keep insertion order
	assert.Equal(t, []string{"b", "a", "c", "d"}, productIDs(out))

	out = SortProducts(products, SortMostRecent)
	assert.Equal(t, []string{"a", "b", "c", "d"}, productIDs(out))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := repository.SeedProducts()
	before := productIDs(products)

	SortProducts(products, SortPriceHighLow)

	assert.Equal(t, before, productIDs(products))
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortPriceLowHigh, ParseSortOption("price-low-high"))
	assert.Equal(t, SortPopularity, ParseSortOption("popularity"))
	assert.Equal(t, DefaultSort, ParseSortOption(""))
	assert.Equal(t, DefaultSort, ParseSortOption("bogus"))
}
