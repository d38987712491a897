package catalog

import (
	"sort"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// Vendors returns distinct, non-empty vendor display names across the given
// products in first-seen order.
func Vendors(products []models.Product) []string {
	seen := make(map[string]bool)
	var vendors []string
	for i := range products {
		name := products[i].Vendor.DisplayName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		vendors = append(vendors, name)
	}
	return vendors
}

// PopularTypes computes per-type product counts across the whole tree and
// returns the top limit entries, counts descending, ties broken by type
// insertion order. A non-positive limit falls back to 10.
func PopularTypes(products []models.Product, ix *Index, limit int) []models.TypeProductCount {
	if limit <= 0 {
		limit = 10
	}
	counts := typeCounts(products, ix.AllTypes())
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].ProductCount > counts[j].ProductCount
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// TypesWithProductCounts computes per-type counts scoped to one category's
// types, in hierarchy order.
func TypesWithProductCounts(products []models.Product, ix *Index, categoryID string) []models.TypeProductCount {
	return typeCounts(products, ix.TypesByCategory(categoryID))
}

func typeCounts(products []models.Product, types []models.SubCategoryType) []models.TypeProductCount {
	byType := make(map[string]int)
	for i := range products {
		if products[i].SubCategoryTypeID != "" {
			byType[products[i].SubCategoryTypeID]++
		}
	}
	counts := make([]models.TypeProductCount, 0, len(types))
	for _, t := range types {
		counts = append(counts, models.TypeProductCount{
			ID:           t.ID,
			Name:         t.Name,
			ProductCount: byType[t.ID],
		})
	}
	return counts
}

// PriceRange returns the min and max price across the products. An empty
// collection yields a zero range.
func PriceRange(products []models.Product) models.PriceRangeData {
	if len(products) == 0 {
		return models.PriceRangeData{}
	}
	r := models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
	for i := range products[1:] {
		p := products[i+1].Price
		if p < r.Min {
			r.Min = p
		}
		if p > r.Max {
			r.Max = p
		}
	}
	return r
}

// Availability counts in-stock and out-of-stock products.
func Availability(products []models.Product) models.AvailabilityData {
	var a models.AvailabilityData
	for i := range products {
		if products[i].InStock {
			a.InStock++
		} else {
			a.OutOfStock++
		}
	}
	return a
}
