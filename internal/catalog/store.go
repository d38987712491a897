package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// Domain errors surfaced by store mutations.
var (
	ErrNegativeStock = errors.New("stock quantity must not be negative")
)

// Store owns the canonical product collection and category hierarchy. All
// reads hand out copies; all mutations bump the revision counter so derived
// views (see Engine) know when to recompute.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
	revision   uint64
}

// NewStore creates a store seeded with the given collections.
func NewStore(products []models.Product, categories []models.Category) *Store {
	s := &Store{}
	s.Replace(products, categories)
	return s
}

// Replace swaps in a fresh snapshot of both collections. Used at hydration
// and by the periodic catalog sync.
func (s *Store) Replace(products []models.Product, categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product(nil), products...)
	s.categories = append([]models.Category(nil), categories...)
	s.revision++
}

// Revision returns the current mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Products returns a copy of the product collection in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// Categories returns a copy of the category hierarchy.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Count returns the number of products in the base collection.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ProductByID returns a copy of the matching product, or nil when absent.
func (s *Store) ProductByID(id string) *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// AddProduct appends a fully-specified product built from the draft. The
// store assigns a fresh id and timestamps; every caller-supplied field is
// preserved as-is. InStock is derived from the stock quantity.
func (s *Store) AddProduct(draft models.ProductDraft) models.Product {
	now := time.Now().UTC()
	p := models.Product{
		ID:                uuid.NewString(),
		Name:              draft.Name,
		Description:       draft.Description,
		Price:             draft.Price,
		OriginalPrice:     draft.OriginalPrice,
		Rating:            draft.Rating,
		Reviews:           draft.Reviews,
		Vendor:            draft.Vendor,
		Image:             draft.Image,
		Images:            draft.Images,
		CategoryID:        draft.CategoryID,
		SubCategoryID:     draft.SubCategoryID,
		SubCategoryTypeID: draft.SubCategoryTypeID,
		Tags:              draft.Tags,
		InStock:           draft.StockQuantity > 0,
		StockQuantity:     draft.StockQuantity,
		IsFeatured:        draft.IsFeatured,
		IsOnSale:          draft.IsOnSale,
		Specifications:    draft.Specifications,
		ProductionMethod:  draft.ProductionMethod,
		Status:            draft.Status,
		Sales:             draft.Sales,
		Variants:          draft.Variants,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if p.Status == "" {
		p.Status = models.ProductStatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.revision++
	return p
}

// UpdateProduct merges the patch into the product matching id and returns the
// updated copy. The second return is false when the id is absent; absence is
// never a panic.
func (s *Store) UpdateProduct(id string, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		applyPatch(&s.products[i], patch)
		s.products[i].UpdatedAt = time.Now().UTC()
		s.revision++
		return s.products[i], true
	}
	return models.Product{}, false
}

// UpdateProductStock sets the absolute stock quantity and recomputes InStock
// in the same critical section, so no caller can observe the two fields out
// of sync. Negative quantities are rejected and the product is left
// untouched.
func (s *Store) UpdateProductStock(id string, quantity int) (models.Product, bool, error) {
	if quantity < 0 {
		return models.Product{}, false, ErrNegativeStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].StockQuantity = quantity
		s.products[i].InStock = quantity > 0
		s.products[i].UpdatedAt = time.Now().UTC()
		s.revision++
		return s.products[i], true, nil
	}
	return models.Product{}, false, nil
}

// RemoveProduct deletes the matching product. Idempotent: removing an absent
// id is a no-op and returns false.
func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.revision++
			return true
		}
	}
	return false
}

func applyPatch(p *models.Product, patch models.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Vendor != nil {
		p.Vendor = *patch.Vendor
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.SubCategoryID != nil {
		p.SubCategoryID = *patch.SubCategoryID
	}
	if patch.SubCategoryTypeID != nil {
		p.SubCategoryTypeID = *patch.SubCategoryTypeID
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsOnSale != nil {
		p.IsOnSale = *patch.IsOnSale
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.ProductionMethod != nil {
		p.ProductionMethod = *patch.ProductionMethod
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Sales != nil {
		p.Sales = *patch.Sales
	}
	if patch.Variants != nil {
		p.Variants = *patch.Variants
	}
}
