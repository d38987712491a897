package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/models"
)

func TestEngineDefaultQueryReturnsFullSortedView(t *testing.T) {
	e := NewEngine(seededStore(t))

	view := e.Products(Query{Filters: NewFilterState()})

	// empty sort falls back to most-recent
	assert.Equal(t, []string{"3", "1", "2", "8", "4", "5", "7", "6"}, productIDs(view))
}

func TestEngineCounts(t *testing.T) {
	e := NewEngine(seededStore(t))

	f := NewFilterState()
	f.Categories = []string{"1"}
	total, filtered := e.Counts(Query{Filters: f})

	assert.Equal(t, 8, total)
	assert.Equal(t, 3, filtered)
}

func TestEngineMemoizesIdenticalQueries(t *testing.T) {
	e := NewEngine(seededStore(t))
	f := NewFilterState()
	f.Categories = []string{"1"}
	q := Query{Filters: f, Sort: SortPriceLowHigh}

	first := e.Products(q)
	second := e.Products(q)

	assert.Equal(t, productIDs(first), productIDs(second))
}

func TestEngineViewReflectsMutations(t *testing.T) {
	store := seededStore(t)
	e := NewEngine(store)

	f := NewFilterState()
	f.InStock = true
	q := Query{Filters: f}

	before := e.Products(q)
	assert.Len(t, before, 7)

	// restocking product 6 invalidates memoized views
	_, ok, err := store.UpdateProductStock("6", 12)
	require.NoError(t, err)
	require.True(t, ok)

	after := e.Products(q)
	assert.Len(t, after, 8)
	assert.Contains(t, productIDs(after), "6")
}

func TestEngineDistinctFilterValuesGetDistinctViews(t *testing.T) {
	e := NewEngine(seededStore(t))

	// two category ids versus one id that happens to contain a comma
	split := NewFilterState()
	split.Categories = []string{"1", "2"}
	glued := NewFilterState()
	glued.Categories = []string{"1,2"}
	require.NotEqual(t, split.Fingerprint(), glued.Fingerprint())

	assert.Len(t, e.Products(Query{Filters: split}), 4)
	assert.Empty(t, e.Products(Query{Filters: glued}))
}

func TestEngineViewCacheIsBounded(t *testing.T) {
	e := NewEngine(seededStore(t))

	for i := 0; i < maxMemoizedViews+16; i++ {
		e.Products(Query{Filters: NewFilterState(), Search: fmt.Sprintf("term-%d", i)})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.LessOrEqual(t, len(e.views), maxMemoizedViews)
}

func TestEngineDistinctQueriesGetDistinctViews(t *testing.T) {
	e := NewEngine(seededStore(t))

	low := e.Products(Query{Filters: NewFilterState(), Sort: SortPriceLowHigh})
	high := e.Products(Query{Filters: NewFilterState(), Sort: SortPriceHighLow})

	assert.Equal(t, "8", low[0].ID)
	assert.Equal(t, "3", high[0].ID)
}

func TestEngineSearchQuery(t *testing.T) {
	e := NewEngine(seededStore(t))

	view := e.Products(Query{Filters: NewFilterState(), Search: "kente", Sort: SortPriceLowHigh})

	assert.Equal(t, []string{"4", "1"}, productIDs(view))
}

func TestEngineIndexTracksReplacedHierarchy(t *testing.T) {
	store := seededStore(t)
	e := NewEngine(store)

	require.NotNil(t, e.Index().CategoryByID("5"))

	store.Replace(nil, []models.Category{{ID: "only", Name: "Only", IsActive: true}})

	assert.Nil(t, e.Index().CategoryByID("5"))
	assert.NotNil(t, e.Index().CategoryByID("only"))
}
