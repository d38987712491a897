package catalog

import (
	"sort"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// SortOption selects the ordering of a product view.
type SortOption string

const (
	SortPriceLowHigh   SortOption = "price-low-high"
	SortPriceHighLow   SortOption = "price-high-low"
	SortPopularity     SortOption = "popularity"
	SortRating         SortOption = "rating"
	SortNewestArrivals SortOption = "newest-arrivals"
	SortMostRecent     SortOption = "most-recent"
)

// DefaultSort is applied when no sort key is given.
const DefaultSort = SortMostRecent

// ParseSortOption maps a raw string to a supported sort key, falling back to
// the default for unknown values.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceLowHigh, SortPriceHighLow, SortPopularity, SortRating, SortNewestArrivals, SortMostRecent:
		return SortOption(raw)
	default:
		return DefaultSort
	}
}

// SortProducts returns a sorted copy of the given products. The sort is
// stable: ties keep their original (insertion) order. The input slice is
// never reordered.
func SortProducts(products []models.Product, option SortOption) []models.Product {
	sorted := append([]models.Product(nil), products...)

	var less func(a, b *models.Product) bool
	switch option {
	case SortPriceLowHigh:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case SortPriceHighLow:
		less = func(a, b *models.Product) bool { return a.Price > b.Price }
	case SortPopularity:
		less = func(a, b *models.Product) bool { return a.Reviews > b.Reviews }
	case SortRating:
		less = func(a, b *models.Product) bool { return a.Rating > b.Rating }
	case SortNewestArrivals:
		less = func(a, b *models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	default: // SortMostRecent
		less = func(a, b *models.Product) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}
