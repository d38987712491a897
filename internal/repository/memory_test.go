package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/models"
)

func TestMemoryProductRepositoryListPreservesOrder(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "8", products[7].ID)
}

func TestMemoryProductRepositoryGet(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())

	p, err := repo.Get("5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Raw Shea Butter", p.Name)

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryProductRepositoryUpsert(t *testing.T) {
	repo := NewMemoryProductRepository(nil)

	p := models.Product{ID: "x1", Name: "New", Price: 10}
	require.NoError(t, repo.Upsert(&p))

	stored, err := repo.Get("x1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New", stored.Name)

	p.Name = "Renamed"
	require.NoError(t, repo.Upsert(&p))

	stored, err = repo.Get("x1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)

	products, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestMemoryProductRepositoryUpdateStock(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())
	when := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpdateStock("1", 0, when))

	p, err := repo.Get("1")
	require.NoError(t, err)
	assert.False(t, p.InStock)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, when, p.UpdatedAt)
}

func TestMemoryProductRepositoryDelete(t *testing.T) {
	repo := NewMemoryProductRepository(SeedProducts())

	require.NoError(t, repo.Delete("3"))
	p, err := repo.Get("3")
	require.NoError(t, err)
	assert.Nil(t, p)

	// deleting again is a no-op
	require.NoError(t, repo.Delete("3"))
}

func TestMemoryCategoryRepositoryListTree(t *testing.T) {
	repo := NewMemoryCategoryRepository(SeedCategories())

	tree, err := repo.ListTree()
	require.NoError(t, err)
	require.Len(t, tree, 5)
	assert.Equal(t, "Women's Fashion", tree[0].Name)
	require.Len(t, tree[0].SubCategories, 2)
	assert.Len(t, tree[0].SubCategories[0].Types, 2)
}

func TestMemoryAdminUserRepository(t *testing.T) {
	repo := NewMemoryAdminUserRepository()

	_, err := repo.GetByEmail("nobody@sankofamarket.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	user := &models.AdminUser{Email: "ops@sankofamarket.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, 1, user.ID)

	got, err := repo.GetByEmail("ops@sankofamarket.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, got.IsActive)
}
