package repository

import (
	"database/sql"
	"sync"
	"time"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// MemoryProductRepository is an in-memory ProductRepository. It backs tests
// and database-less deployments, and preserves insertion order like the
// Postgres implementation does.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryProductRepository creates a repository holding a copy of the given
// products.
func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	return &MemoryProductRepository{
		products: append([]models.Product(nil), products...),
	}
}

func (r *MemoryProductRepository) List() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Product(nil), r.products...), nil
}

func (r *MemoryProductRepository) Get(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *MemoryProductRepository) Upsert(p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	r.products = append(r.products, *p)
	return nil
}

func (r *MemoryProductRepository) UpdateStock(id string, quantity int, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].StockQuantity = quantity
			r.products[i].InStock = quantity > 0
			r.products[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return nil
}

func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryCategoryRepository serves a static category tree.
type MemoryCategoryRepository struct {
	categories []models.Category
}

// NewMemoryCategoryRepository creates a repository over the given tree.
func NewMemoryCategoryRepository(categories []models.Category) *MemoryCategoryRepository {
	return &MemoryCategoryRepository{
		categories: append([]models.Category(nil), categories...),
	}
}

func (r *MemoryCategoryRepository) ListTree() ([]models.Category, error) {
	return append([]models.Category(nil), r.categories...), nil
}

// MemoryAdminUserRepository keeps admin accounts in memory. Used when no
// database is configured; the boot sequence seeds it from ADMIN_EMAIL and
// ADMIN_PASSWORD.
type MemoryAdminUserRepository struct {
	mu     sync.RWMutex
	nextID int
	users  map[string]models.AdminUser
}

// NewMemoryAdminUserRepository creates an empty account store.
func NewMemoryAdminUserRepository() *MemoryAdminUserRepository {
	return &MemoryAdminUserRepository{nextID: 1, users: make(map[string]models.AdminUser)}
}

func (r *MemoryAdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[email]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (r *MemoryAdminUserRepository) Create(user *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.nextID++
	r.users[user.Email] = *user
	return nil
}
