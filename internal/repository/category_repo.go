package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sankofamarket/catalog-api/internal/models"
)

// CategoryRepository loads the classification hierarchy.
type CategoryRepository interface {
	ListTree() ([]models.Category, error)
}

// PostgresCategoryRepository handles category data access on Postgres.
type PostgresCategoryRepository struct {
	db *sqlx.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(db *sqlx.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// ListTree loads categories, subcategories and types and assembles the
// strict containment tree, preserving insertion order at every level.
func (r *PostgresCategoryRepository) ListTree() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Select(&categories, `SELECT * FROM categories ORDER BY created_at, id`); err != nil {
		return nil, err
	}

	var subCategories []models.SubCategory
	if err := r.db.Select(&subCategories, `SELECT * FROM sub_categories ORDER BY created_at, id`); err != nil {
		return nil, err
	}

	var types []models.SubCategoryType
	if err := r.db.Select(&types, `SELECT * FROM sub_category_types ORDER BY created_at, id`); err != nil {
		return nil, err
	}

	subByID := make(map[string]*models.SubCategory, len(subCategories))
	for i := range subCategories {
		subByID[subCategories[i].ID] = &subCategories[i]
	}
	for _, t := range types {
		if sc, ok := subByID[t.SubCategoryID]; ok {
			sc.Types = append(sc.Types, t)
		}
	}

	catByID := make(map[string]*models.Category, len(categories))
	for i := range categories {
		catByID[categories[i].ID] = &categories[i]
	}
	for i := range subCategories {
		if c, ok := catByID[subCategories[i].CategoryID]; ok {
			c.SubCategories = append(c.SubCategories, subCategories[i])
		}
	}

	return categories, nil
}
