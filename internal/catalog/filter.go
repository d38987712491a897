package catalog

import (
	"encoding/json"
	"strings"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// DefaultPriceMax is the upper bound of the default (unconstrained) price
// range.
const DefaultPriceMax = 1_000_000

// FilterState is the set of currently active narrowing criteria over the
// product collection. Zero-valued dimensions are pass-through.
type FilterState struct {
	Categories        []string `json:"categories" form:"category"`
	SubCategories     []string `json:"subCategories" form:"subcategory"`
	Types             []string `json:"types" form:"type"`
	PriceMin          float64  `json:"priceMin" form:"minPrice"`
	PriceMax          float64  `json:"priceMax" form:"maxPrice"`
	ProductionMethods []string `json:"productionMethods" form:"method"`
	Vendors           []string `json:"vendors" form:"vendor"`
	InStock           bool     `json:"inStock" form:"inStock"`
	OnSale            bool     `json:"onSale" form:"onSale"`
	MinRating         float64  `json:"minRating" form:"minRating"`
}

// NewFilterState returns the default state: empty sets, full price range,
// zero minimum rating.
func NewFilterState() FilterState {
	return FilterState{PriceMin: 0, PriceMax: DefaultPriceMax}
}

// Reset restores all dimensions to their defaults.
func (f *FilterState) Reset() {
	*f = NewFilterState()
}

// Fingerprint returns a deterministic key for memoizing derived views. JSON
// keeps the encoding unambiguous: values containing delimiter characters
// cannot make two distinct states produce the same key.
func (f FilterState) Fingerprint() string {
	b, _ := json.Marshal(f)
	return string(b)
}

// toSet builds a membership set from a slice. Empty slices yield nil, which
// evaluators treat as "dimension inactive".
func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// toLowerSet is toSet with case-insensitive membership.
func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// evaluator holds the pre-built lookup sets for one evaluation pass.
type evaluator struct {
	filters FilterState
	search  string

	categories map[string]bool
	subCats    map[string]bool
	types      map[string]bool
	methods    map[string]bool
	vendors    map[string]bool
}

func newEvaluator(filters FilterState, search string) *evaluator {
	return &evaluator{
		filters:    filters,
		search:     strings.ToLower(strings.TrimSpace(search)),
		categories: toSet(filters.Categories),
		subCats:    toSet(filters.SubCategories),
		types:      toSet(filters.Types),
		methods:    toLowerSet(filters.ProductionMethods),
		vendors:    toLowerSet(filters.Vendors),
	}
}

// matches reports whether the product passes every active predicate. The
// predicates form a pure conjunction; search and id-set narrowing run first
// since they prune the most.
func (e *evaluator) matches(p *models.Product) bool {
	if e.search != "" && !matchesSearch(p, e.search) {
		return false
	}
	if e.categories != nil && !e.categories[p.CategoryID] {
		return false
	}
	if e.subCats != nil && !e.subCats[p.SubCategoryID] {
		return false
	}
	if e.types != nil && !e.types[p.SubCategoryTypeID] {
		return false
	}
	if p.Price < e.filters.PriceMin || p.Price > e.filters.PriceMax {
		return false
	}
	if e.methods != nil && !e.methods[strings.ToLower(string(p.ProductionMethod))] {
		return false
	}
	if e.vendors != nil && !e.vendors[strings.ToLower(p.Vendor.DisplayName())] {
		return false
	}
	if e.filters.InStock && !p.InStock {
		return false
	}
	if e.filters.OnSale && !p.IsOnSale {
		return false
	}
	if e.filters.MinRating > 0 && p.Rating < e.filters.MinRating {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against name,
// description, or any tag.
func matchesSearch(p *models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// ApplyFilters returns the products passing every active predicate of the
// filter state plus the free-text search term, preserving insertion order.
func ApplyFilters(products []models.Product, filters FilterState, search string) []models.Product {
	ev := newEvaluator(filters, search)
	out := make([]models.Product, 0, len(products))
	for i := range products {
		if ev.matches(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
