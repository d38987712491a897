package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/sankofamarket/catalog-api/internal/cache"
	"github.com/sankofamarket/catalog-api/internal/config"
	"github.com/sankofamarket/catalog-api/internal/database"
	"github.com/sankofamarket/catalog-api/internal/handler"
	"github.com/sankofamarket/catalog-api/internal/middleware"
	"github.com/sankofamarket/catalog-api/internal/models"
	"github.com/sankofamarket/catalog-api/internal/repository"
	"github.com/sankofamarket/catalog-api/internal/service"
	"github.com/sankofamarket/catalog-api/internal/sse"
	"github.com/sankofamarket/catalog-api/internal/utils"
	"github.com/sankofamarket/catalog-api/internal/worker"
)

// main is the application entrypoint for the Sankofa Market catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalog api")

	utils.SetJWTSecret(cfg.JWTSecret)

	// 3. Connect database (optional; empty DB_HOST runs from the seed catalog)
	var db *sqlx.DB
	if cfg.DB.Enabled() {
		db, err = database.Connect(&cfg.DB)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := runMigrations(db.DB); err != nil {
			log.Error().Err(err).Msg("migration failed")
			fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
			os.Exit(1)
		}
		log.Info().Msg("migrations completed successfully")
	} else {
		log.Info().Msg("no database configured, serving the seed catalog from memory")
	}

	// 3b. Connect to Redis (optional)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected successfully")
	}
	catalogCache := cache.NewCatalogCache(redisClient, cfg.Worker.MetadataCacheTTL)

	// 4. Initialize repositories
	var (
		productRepo  repository.ProductRepository
		categoryRepo repository.CategoryRepository
		adminRepo    repository.AdminUserRepository
	)
	if db != nil {
		productRepo = repository.NewPostgresProductRepository(db)
		categoryRepo = repository.NewPostgresCategoryRepository(db)
		adminRepo = repository.NewPostgresAdminUserRepository(db)
	} else {
		productRepo = repository.NewMemoryProductRepository(repository.SeedProducts())
		categoryRepo = repository.NewMemoryCategoryRepository(repository.SeedCategories())
		memAdmins := repository.NewMemoryAdminUserRepository()
		if err := seedAdminUser(memAdmins, cfg.Admin); err != nil {
			log.Warn().Err(err).Msg("admin bootstrap skipped")
		}
		adminRepo = memAdmins
	}

	// 5. Initialize SSE hub and services
	hub := sse.NewHub()

	catalogSvc, err := service.NewCatalogService(productRepo, categoryRepo, catalogCache, hub)
	if err != nil {
		log.Error().Err(err).Msg("catalog hydration failed")
		fmt.Fprintf(os.Stderr, "catalog hydration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Int("products", catalogSvc.ProductCount()).Msg("catalog hydrated")

	authSvc := service.NewAuthService(adminRepo)
	moderationSvc := service.NewModerationService(cfg.AWS)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:       handler.NewHealthHandler(db, catalogSvc),
		Storefront:   handler.NewStorefrontHandler(catalogSvc),
		CatalogAdmin: handler.NewCatalogAdminHandler(catalogSvc, moderationSvc),
		Auth:         handler.NewAuthHandler(authSvc, middleware.NewInvalidAuthRateLimiter()),
		SSE:          handler.NewSSEHandler(hub),
	}

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, middleware.NewJWTMiddleware())

	// 8. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 9. Start workers. The sync worker only matters with a shared database
	// behind the snapshot.
	if db != nil {
		go worker.NewCatalogSyncWorker(catalogSvc, cfg.Worker.CatalogSyncInterval).Start(ctx)
	}

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Cancel context to stop workers
	cancel()

	// 13. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health       *handler.HealthHandler
	Storefront   *handler.StorefrontHandler
	CatalogAdmin *handler.CatalogAdminHandler
	Auth         *handler.AuthHandler
	SSE          *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	store := router.Group("/v1/store")
	{
		store.GET("/products", handlers.Storefront.ListProducts)
		store.GET("/products/:id", handlers.Storefront.GetProduct)
		store.GET("/categories", handlers.Storefront.ListCategories)
		store.GET("/categories/:id/types", handlers.Storefront.GetCategoryTypes)
		store.GET("/filters", handlers.Storefront.GetFilterMetadata)
		store.GET("/vendors", handlers.Storefront.ListVendors)
		store.GET("/types/popular", handlers.Storefront.GetPopularTypes)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	// SSE authenticates via query token inside the handler
	admin.GET("/events", handlers.SSE.Stream)
	admin.Use(jwtMiddleware.Handle())
	{
		admin.POST("/products", handlers.CatalogAdmin.CreateProduct)
		admin.PUT("/products/:id", handlers.CatalogAdmin.UpdateProduct)
		admin.PUT("/products/:id/stock", handlers.CatalogAdmin.UpdateProductStock)
		admin.DELETE("/products/:id", handlers.CatalogAdmin.DeleteProduct)
		admin.POST("/products/:id/moderate", handlers.CatalogAdmin.ModerateProduct)
	}
}

// seedAdminUser bootstraps the first admin account for memory-backed runs.
func seedAdminUser(repo *repository.MemoryAdminUserRepository, seed config.AdminSeedConfig) error {
	if seed.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD not set, admin login disabled")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	now := time.Now().UTC()
	return repo.Create(&models.AdminUser{
		ID:           1,
		Email:        seed.Email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
