package models

import "time"

// Category is the top level of the three-level classification hierarchy.
// Ownership is strict tree containment: a SubCategory belongs to exactly one
// Category and a SubCategoryType to exactly one SubCategory.
type Category struct {
	ID            string        `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	Description   string        `db:"description" json:"description"`
	IsActive      bool          `db:"is_active" json:"isActive"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	SubCategories []SubCategory `db:"-" json:"subCategories"`
}

// SubCategory is the middle level of the hierarchy.
type SubCategory struct {
	ID          string            `db:"id" json:"id"`
	CategoryID  string            `db:"category_id" json:"categoryId"`
	Name        string            `db:"name" json:"name"`
	Description string            `db:"description" json:"description"`
	IsActive    bool              `db:"is_active" json:"isActive"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
	Types       []SubCategoryType `db:"-" json:"types"`
}

// SubCategoryType is the leaf level of the hierarchy.
type SubCategoryType struct {
	ID            string    `db:"id" json:"id"`
	SubCategoryID string    `db:"sub_category_id" json:"subCategoryId"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// TypeHierarchy is the full classification path of one SubCategoryType.
type TypeHierarchy struct {
	Category    Category        `json:"category"`
	SubCategory SubCategory     `json:"subCategory"`
	Type        SubCategoryType `json:"type"`
}

// TypeProductCount pairs a SubCategoryType with the number of products
// referencing it.
type TypeProductCount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// FilterMetadata is the storefront filter sidebar payload: everything the UI
// needs to render its narrowing controls.
type FilterMetadata struct {
	Availability      AvailabilityData   `json:"availability"`
	Categories        []Category         `json:"categories"`
	PriceRange        PriceRangeData     `json:"priceRange"`
	Vendors           []string           `json:"vendors"`
	ProductionMethods []ProductionMethod `json:"productionMethods"`
}

// AvailabilityData holds product availability counts.
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData is the minimum and maximum price across the catalog.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
