package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sankofamarket/catalog-api/internal/cache"
	"github.com/sankofamarket/catalog-api/internal/catalog"
	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
	"github.com/sankofamarket/catalog-api/internal/sse"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

// CatalogService owns the in-memory catalog engine and keeps it consistent
// with the repositories. Queries are served from the engine; mutations write
// through to the repository, then update the engine, invalidate the metadata
// cache and broadcast an admin event.
type CatalogService struct {
	engine       *catalog.Engine
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	catalogCache *cache.CatalogCache
	hub          *sse.Hub
}

// NewCatalogService hydrates the engine from the repositories.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	catalogCache *cache.CatalogCache,
	hub *sse.Hub,
) (*CatalogService, error) {
	products, err := productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	categories, err := categoryRepo.ListTree()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	store := catalog.NewStore(products, categories)
	return &CatalogService{
		engine:       catalog.NewEngine(store),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		catalogCache: catalogCache,
		hub:          hub,
	}, nil
}

// Refresh reloads the engine snapshot from the repositories. Used by the
// catalog sync worker to pick up out-of-band writes.
func (s *CatalogService) Refresh(ctx context.Context) error {
	products, err := s.productRepo.List()
	if err != nil {
		return fmt.Errorf("failed to reload products: %w", err)
	}
	categories, err := s.categoryRepo.ListTree()
	if err != nil {
		return fmt.Errorf("failed to reload categories: %w", err)
	}
	s.engine.Store().Replace(products, categories)
	s.afterMutation(ctx)
	return nil
}

// QueryProducts returns the filtered, sorted view plus the base and filtered
// counts.
func (s *CatalogService) QueryProducts(q catalog.Query) (view []models.Product, total, filtered int) {
	view = s.engine.Products(q)
	return view, s.engine.Store().Count(), len(view)
}

// ProductCount returns the size of the base collection.
func (s *CatalogService) ProductCount() int {
	return s.engine.Store().Count()
}

// ProductByID returns the product or nil.
func (s *CatalogService) ProductByID(id string) *models.Product {
	return s.engine.Store().ProductByID(id)
}

// Categories returns the hierarchy, preferring the Redis copy.
func (s *CatalogService) Categories(ctx context.Context) []models.Category {
	if tree, ok := s.catalogCache.GetCategoryTree(ctx); ok {
		return tree
	}
	tree := s.engine.Store().Categories()
	if err := s.catalogCache.SetCategoryTree(ctx, tree); err != nil {
		log.Warn().Err(err).Msg("Failed to cache category tree")
	}
	return tree
}

// CategoryByID returns one category or nil.
func (s *CatalogService) CategoryByID(id string) *models.Category {
	return s.engine.Index().CategoryByID(id)
}

// SubCategoryByID returns one subcategory or nil.
func (s *CatalogService) SubCategoryByID(id string) *models.SubCategory {
	return s.engine.Index().SubCategoryByID(id)
}

// TypeByID returns one type or nil.
func (s *CatalogService) TypeByID(id string) *models.SubCategoryType {
	return s.engine.Index().TypeByID(id)
}

// HierarchyForType returns the classification path of a type, or nil.
func (s *CatalogService) HierarchyForType(typeID string) *models.TypeHierarchy {
	return s.engine.Index().HierarchyForType(typeID)
}

// Vendors returns the distinct vendor display names of the base collection.
func (s *CatalogService) Vendors() []string {
	return catalog.Vendors(s.engine.Store().Products())
}

// PopularTypes returns the most-referenced types across the catalog.
func (s *CatalogService) PopularTypes(limit int) []models.TypeProductCount {
	return catalog.PopularTypes(s.engine.Store().Products(), s.engine.Index(), limit)
}

// TypesWithProductCounts returns per-type counts for one category.
func (s *CatalogService) TypesWithProductCounts(categoryID string) []models.TypeProductCount {
	return catalog.TypesWithProductCounts(s.engine.Store().Products(), s.engine.Index(), categoryID)
}

// FilterMetadata assembles the storefront filter sidebar payload, preferring
// the Redis copy.
func (s *CatalogService) FilterMetadata(ctx context.Context) *models.FilterMetadata {
	if meta, ok := s.catalogCache.GetFilterMetadata(ctx); ok {
		return meta
	}

	products := s.engine.Store().Products()
	meta := &models.FilterMetadata{
		Availability: catalog.Availability(products),
		Categories:   s.engine.Store().Categories(),
		PriceRange:   catalog.PriceRange(products),
		Vendors:      catalog.Vendors(products),
		ProductionMethods: []models.ProductionMethod{
			models.ProductionHandwoven,
			models.ProductionHandmade,
			models.ProductionMachineMade,
			models.ProductionOrganic,
		},
	}
	if err := s.catalogCache.SetFilterMetadata(ctx, meta); err != nil {
		log.Warn().Err(err).Msg("Failed to cache filter metadata")
	}
	return meta
}

// CreateProduct validates the classification references, appends the product
// and persists it.
func (s *CatalogService) CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	if err := s.validateClassification(draft.CategoryID, draft.SubCategoryID, draft.SubCategoryTypeID); err != nil {
		return models.Product{}, err
	}

	p := s.engine.Store().AddProduct(draft)
	if err := s.productRepo.Upsert(&p); err != nil {
		return models.Product{}, fmt.Errorf("failed to persist product: %w", err)
	}

	s.afterMutation(ctx)
	s.broadcast(sse.EventProductCreated, &p)
	return p, nil
}

// UpdateProduct merges a patch into an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	if patch.CategoryID != nil || patch.SubCategoryID != nil || patch.SubCategoryTypeID != nil {
		current := s.engine.Store().ProductByID(id)
		if current == nil {
			return models.Product{}, utils.ErrProductNotFound
		}
		categoryID, subCategoryID, typeID := current.CategoryID, current.SubCategoryID, current.SubCategoryTypeID
		if patch.CategoryID != nil {
			categoryID = *patch.CategoryID
		}
		if patch.SubCategoryID != nil {
			subCategoryID = *patch.SubCategoryID
		}
		if patch.SubCategoryTypeID != nil {
			typeID = *patch.SubCategoryTypeID
		}
		if err := s.validateClassification(categoryID, subCategoryID, typeID); err != nil {
			return models.Product{}, err
		}
	}

	p, ok := s.engine.Store().UpdateProduct(id, patch)
	if !ok {
		return models.Product{}, utils.ErrProductNotFound
	}
	if err := s.productRepo.Upsert(&p); err != nil {
		return models.Product{}, fmt.Errorf("failed to persist product: %w", err)
	}

	s.afterMutation(ctx)
	s.broadcast(sse.EventProductUpdated, &p)
	return p, nil
}

// UpdateProductStock sets the absolute stock quantity. Negative values are
// rejected with catalog.ErrNegativeStock.
func (s *CatalogService) UpdateProductStock(ctx context.Context, id string, quantity int) (models.Product, error) {
	p, ok, err := s.engine.Store().UpdateProductStock(id, quantity)
	if err != nil {
		return models.Product{}, err
	}
	if !ok {
		return models.Product{}, utils.ErrProductNotFound
	}
	if err := s.productRepo.UpdateStock(id, quantity, p.UpdatedAt); err != nil {
		return models.Product{}, fmt.Errorf("failed to persist stock update: %w", err)
	}

	s.afterMutation(ctx)
	s.broadcast(sse.EventProductStockChanged, &p)
	return p, nil
}

// RemoveProduct deletes a product. Idempotent: removing an absent id reports
// removed=false with no error.
func (s *CatalogService) RemoveProduct(ctx context.Context, id string) (bool, error) {
	removed := s.engine.Store().RemoveProduct(id)
	if err := s.productRepo.Delete(id); err != nil {
		return removed, fmt.Errorf("failed to delete product: %w", err)
	}
	if removed {
		s.afterMutation(ctx)
		s.broadcast(sse.EventProductRemoved, &models.Product{ID: id})
	}
	return removed, nil
}

// FlagProduct broadcasts a moderation flag event for admin dashboards.
func (s *CatalogService) FlagProduct(p *models.Product) {
	s.broadcast(sse.EventProductFlagged, p)
}

// validateClassification enforces the strict containment chain:
// category must exist, a non-empty subcategory must belong to it, and a
// non-empty type must belong to that subcategory.
func (s *CatalogService) validateClassification(categoryID, subCategoryID, typeID string) error {
	ix := s.engine.Index()

	if ix.CategoryByID(categoryID) == nil {
		return utils.ErrInvalidCategoryRef
	}
	if subCategoryID != "" {
		sc := ix.SubCategoryByID(subCategoryID)
		if sc == nil || sc.CategoryID != categoryID {
			return utils.ErrInvalidCategoryRef
		}
	}
	if typeID != "" {
		if subCategoryID == "" {
			return utils.ErrInvalidCategoryRef
		}
		t := ix.TypeByID(typeID)
		if t == nil || t.SubCategoryID != subCategoryID {
			return utils.ErrInvalidCategoryRef
		}
	}
	return nil
}

func (s *CatalogService) afterMutation(ctx context.Context) {
	if err := s.catalogCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
	}
}

func (s *CatalogService) broadcast(event sse.EventType, p *models.Product) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(sse.NewProductEvent(event, p))
}
