package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/sankofamarket/catalog-api/internal/service"
	"github.com/sankofamarket/catalog-api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	db             *sqlx.DB
	catalogService *service.CatalogService
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the
// service runs from the in-memory catalog only.
func NewHealthHandler(db *sqlx.DB, catalogService *service.CatalogService) *HealthHandler {
	return &HealthHandler{db: db, catalogService: catalogService}
}

// GetHealth responds with service, database and catalog status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "connected"
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			dbStatus = "disconnected"
		}
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":   "healthy",
		"version":  "1.0.0",
		"uptime":   int(time.Since(startTime).Seconds()),
		"database": dbStatus,
		"catalog": gin.H{
			"products": h.catalogService.ProductCount(),
		},
	})
}
