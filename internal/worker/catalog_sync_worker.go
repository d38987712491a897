package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sankofamarket/catalog-api/internal/service"
)

// CatalogSyncWorker periodically reloads the in-memory catalog from the
// repositories so out-of-band writes (migrations, bulk imports, other
// instances) become visible without a restart.
type CatalogSyncWorker struct {
	catalogService *service.CatalogService
	interval       time.Duration
}

// NewCatalogSyncWorker constructs a CatalogSyncWorker.
func NewCatalogSyncWorker(catalogService *service.CatalogService, interval time.Duration) *CatalogSyncWorker {
	return &CatalogSyncWorker{
		catalogService: catalogService,
		interval:       interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *CatalogSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog sync worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Catalog sync worker stopped")
			return
		}
	}
}

func (w *CatalogSyncWorker) run(ctx context.Context) {
	start := time.Now()
	if err := w.catalogService.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh catalog snapshot")
		return
	}
	log.Info().Dur("duration", time.Since(start)).Int("products", w.catalogService.ProductCount()).Msg("Catalog snapshot refreshed")
}
