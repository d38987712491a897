package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// ProductRepository is the persistence boundary for products. The catalog
// engine depends on it abstractly: Postgres backs production, the in-memory
// implementation backs tests and database-less deployments.
type ProductRepository interface {
	List() ([]models.Product, error)
	Get(id string) (*models.Product, error)
	Upsert(p *models.Product) error
	UpdateStock(id string, quantity int, updatedAt time.Time) error
	Delete(id string) error
}

// PostgresProductRepository handles product data access on Postgres.
type PostgresProductRepository struct {
	db *sqlx.DB
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(db *sqlx.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// List returns all products in insertion order.
func (r *PostgresProductRepository) List() ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at, id`

	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns a single product by id, or nil when absent.
func (r *PostgresProductRepository) Get(id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or updates a product by id.
func (r *PostgresProductRepository) Upsert(p *models.Product) error {
	const q = `
        INSERT INTO products (
            id, name, description, price, original_price, rating, reviews,
            vendor, image, images, category_id, sub_category_id,
            sub_category_type_id, tags, in_stock, stock_quantity, is_featured,
            is_on_sale, specifications, production_method, status, sales,
            variants, created_at, updated_at
        ) VALUES (
            :id, :name, :description, :price, :original_price, :rating, :reviews,
            :vendor, :image, :images, :category_id, :sub_category_id,
            :sub_category_type_id, :tags, :in_stock, :stock_quantity, :is_featured,
            :is_on_sale, :specifications, :production_method, :status, :sales,
            :variants, :created_at, :updated_at
        )
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            price = EXCLUDED.price,
            original_price = EXCLUDED.original_price,
            rating = EXCLUDED.rating,
            reviews = EXCLUDED.reviews,
            vendor = EXCLUDED.vendor,
            image = EXCLUDED.image,
            images = EXCLUDED.images,
            category_id = EXCLUDED.category_id,
            sub_category_id = EXCLUDED.sub_category_id,
            sub_category_type_id = EXCLUDED.sub_category_type_id,
            tags = EXCLUDED.tags,
            in_stock = EXCLUDED.in_stock,
            stock_quantity = EXCLUDED.stock_quantity,
            is_featured = EXCLUDED.is_featured,
            is_on_sale = EXCLUDED.is_on_sale,
            specifications = EXCLUDED.specifications,
            production_method = EXCLUDED.production_method,
            status = EXCLUDED.status,
            sales = EXCLUDED.sales,
            variants = EXCLUDED.variants,
            updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExec(q, p)
	return err
}

// UpdateStock sets the stock quantity and the derived in_stock flag in one
// statement.
func (r *PostgresProductRepository) UpdateStock(id string, quantity int, updatedAt time.Time) error {
	const q = `UPDATE products
        SET stock_quantity = $2, in_stock = ($2 > 0), updated_at = $3
        WHERE id = $1`

	_, err := r.db.Exec(q, id, quantity, updatedAt)
	return err
}

// Delete deletes a product by id.
func (r *PostgresProductRepository) Delete(id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
