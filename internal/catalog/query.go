package catalog

import (
	"encoding/json"
	"sync"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// maxMemoizedViews bounds the view cache so arbitrary search strings cannot
// grow it without limit between store mutations.
const maxMemoizedViews = 256

// Query bundles the parameters that determine a derived product view.
type Query struct {
	Filters FilterState
	Sort    SortOption
	Search  string
}

func (q Query) key() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// Engine derives the visible, ordered subset of products for a query. Results
// are memoized keyed on (store revision, filter fingerprint, sort, search) so
// repeated identical queries cost one map lookup; any store mutation bumps
// the revision and drops the whole cache. The cache holds at most
// maxMemoizedViews entries per revision.
type Engine struct {
	store *Store

	mu       sync.Mutex
	revision uint64
	views    map[string][]models.Product
	index    *Index
}

// NewEngine creates an engine over the given store.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// Store exposes the underlying entity store.
func (e *Engine) Store() *Store {
	return e.store
}

// Index returns the lookup index for the current category snapshot. The
// index is rebuilt lazily whenever the store revision changes.
func (e *Engine) Index() *Index {
	rev := e.store.Revision()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureFresh(rev)
	if e.index == nil {
		e.index = NewIndex(e.store.Categories())
	}
	return e.index
}

// Products returns the filtered and sorted view for the query.
func (e *Engine) Products(q Query) []models.Product {
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	rev := e.store.Revision()
	key := q.key()

	e.mu.Lock()
	e.ensureFresh(rev)
	if view, ok := e.views[key]; ok {
		e.mu.Unlock()
		return view
	}
	e.mu.Unlock()

	// Compute outside the lock; duplicate computation under contention is
	// acceptable, the last writer wins with an identical result.
	view := SortProducts(ApplyFilters(e.store.Products(), q.Filters, q.Search), q.Sort)

	e.mu.Lock()
	if e.revision == rev {
		if len(e.views) >= maxMemoizedViews {
			e.views = make(map[string][]models.Product)
		}
		e.views[key] = view
	}
	e.mu.Unlock()
	return view
}

// Counts returns the base collection size and the filtered view size for the
// query.
func (e *Engine) Counts(q Query) (total, filtered int) {
	return e.store.Count(), len(e.Products(q))
}

// ensureFresh invalidates memoized state when the revision moved. Caller must
// hold e.mu.
func (e *Engine) ensureFresh(rev uint64) {
	if e.views == nil || e.revision != rev {
		e.views = make(map[string][]models.Product)
		e.index = nil
		e.revision = rev
	}
}
