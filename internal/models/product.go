package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ProductStatus enumerates the supported product lifecycle states.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

// ProductionMethod enumerates how a product is made.
type ProductionMethod string

const (
	ProductionHandwoven   ProductionMethod = "handwoven"
	ProductionHandmade    ProductionMethod = "handmade"
	ProductionMachineMade ProductionMethod = "machine-made"
	ProductionOrganic     ProductionMethod = "organic"
)

// UnknownVendorName is the display name used when a vendor value cannot be
// resolved to a name.
const UnknownVendorName = "Unknown Vendor"

// VendorRef is the selling party attached to a product. Upstream feeds carry
// it either as a plain name string or as a reference object with id and name,
// so it accepts both on the wire.
type VendorRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// DisplayName resolves the vendor to a display string. Malformed or empty
// vendors resolve to UnknownVendorName so filtering and search degrade
// gracefully instead of failing.
func (v VendorRef) DisplayName() string {
	if v.Name == "" {
		return UnknownVendorName
	}
	return v.Name
}

// UnmarshalJSON accepts either a bare string ("Adwoa Textiles") or an object
// ({"id":"v1","name":"Adwoa Textiles"}). Anything else resolves to the
// unknown vendor rather than an error.
func (v *VendorRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = VendorRef{Name: s}
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Name != "" {
		*v = VendorRef{ID: obj.ID, Name: obj.Name}
		return nil
	}

	*v = VendorRef{}
	return nil
}

// MarshalJSON preserves the compact string form for literal vendors.
func (v VendorRef) MarshalJSON() ([]byte, error) {
	if v.ID == "" {
		return json.Marshal(v.Name)
	}
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{v.ID, v.Name})
}

// Scan implements sql.Scanner for the JSONB vendor column.
func (v *VendorRef) Scan(value interface{}) error {
	if value == nil {
		*v = VendorRef{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VendorRef")
	}
	return v.UnmarshalJSON(bytes)
}

// Value implements driver.Valuer for the JSONB vendor column.
func (v VendorRef) Value() (driver.Value, error) {
	return v.MarshalJSON()
}

// Variant is one purchasable variation of a product.
type Variant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	InStock       bool      `json:"inStock"`
	StockQuantity int       `json:"stockQuantity"`
	Attributes    StringMap `json:"attributes,omitempty"`
}

// Custom slice/map types so JSONB columns can carry them.
type (
	StringList  []string
	StringMap   map[string]string
	VariantList []Variant
)

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(StringMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(m)
}

func (l *VariantList) Scan(value interface{}) error {
	if value == nil {
		*l = make(VariantList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantList")
	}
	return json.Unmarshal(bytes, l)
}

func (l VariantList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Variant{})
	}
	return json.Marshal(l)
}

// Product represents a sellable catalog item with pricing, stock, and
// classification metadata. Fields are tagged for both DB scanning and JSON
// serialization.
type Product struct {
	ID                string           `db:"id" json:"id"`
	Name              string           `db:"name" json:"name"`
	Description       string           `db:"description" json:"description"`
	Price             float64          `db:"price" json:"price"`
	OriginalPrice     *float64         `db:"original_price" json:"originalPrice,omitempty"`
	Rating            float64          `db:"rating" json:"rating"`
	Reviews           int              `db:"reviews" json:"reviews"`
	Vendor            VendorRef        `db:"vendor" json:"vendor"`
	Image             string           `db:"image" json:"image"`
	Images            StringList       `db:"images" json:"images"`
	CategoryID        string           `db:"category_id" json:"categoryId"`
	SubCategoryID     string           `db:"sub_category_id" json:"subCategoryId"`
	SubCategoryTypeID string           `db:"sub_category_type_id" json:"subCategoryTypeId,omitempty"`
	Tags              StringList       `db:"tags" json:"tags"`
	InStock           bool             `db:"in_stock" json:"inStock"`
	StockQuantity     int              `db:"stock_quantity" json:"stockQuantity"`
	IsFeatured        bool             `db:"is_featured" json:"isFeatured"`
	IsOnSale          bool             `db:"is_on_sale" json:"isOnSale"`
	Specifications    StringMap        `db:"specifications" json:"specifications"`
	ProductionMethod  ProductionMethod `db:"production_method" json:"productionMethod"`
	Status            ProductStatus    `db:"status" json:"status"`
	Sales             int              `db:"sales" json:"sales"`
	Variants          VariantList      `db:"variants" json:"variants,omitempty"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updatedAt"`
}

// ProductDraft is the payload for creating a product. The store assigns id
// and timestamps; everything else is caller-supplied and preserved as-is.
type ProductDraft struct {
	Name              string           `json:"name" binding:"required"`
	Description       string           `json:"description"`
	Price             float64          `json:"price" binding:"min=0"`
	OriginalPrice     *float64         `json:"originalPrice" binding:"omitempty,min=0"`
	Rating            float64          `json:"rating" binding:"min=0,max=5"`
	Reviews           int              `json:"reviews" binding:"min=0"`
	Vendor            VendorRef        `json:"vendor"`
	Image             string           `json:"image"`
	Images            StringList       `json:"images"`
	CategoryID        string           `json:"categoryId" binding:"required"`
	SubCategoryID     string           `json:"subCategoryId"`
	SubCategoryTypeID string           `json:"subCategoryTypeId"`
	Tags              StringList       `json:"tags"`
	StockQuantity     int              `json:"stockQuantity" binding:"min=0"`
	IsFeatured        bool             `json:"isFeatured"`
	IsOnSale          bool             `json:"isOnSale"`
	Specifications    StringMap        `json:"specifications"`
	ProductionMethod  ProductionMethod `json:"productionMethod"`
	Status            ProductStatus    `json:"status"`
	Sales             int              `json:"sales" binding:"min=0"`
	Variants          VariantList      `json:"variants"`
}

// ProductPatch is a partial update applied to an existing product. Nil fields
// are left untouched.
type ProductPatch struct {
	Name              *string           `json:"name"`
	Description       *string           `json:"description"`
	Price             *float64          `json:"price" binding:"omitempty,min=0"`
	OriginalPrice     *float64          `json:"originalPrice" binding:"omitempty,min=0"`
	Rating            *float64          `json:"rating" binding:"omitempty,min=0,max=5"`
	Reviews           *int              `json:"reviews" binding:"omitempty,min=0"`
	Vendor            *VendorRef        `json:"vendor"`
	Image             *string           `json:"image"`
	Images            *StringList       `json:"images"`
	CategoryID        *string           `json:"categoryId"`
	SubCategoryID     *string           `json:"subCategoryId"`
	SubCategoryTypeID *string           `json:"subCategoryTypeId"`
	Tags              *StringList       `json:"tags"`
	IsFeatured        *bool             `json:"isFeatured"`
	IsOnSale          *bool             `json:"isOnSale"`
	Specifications    *StringMap        `json:"specifications"`
	ProductionMethod  *ProductionMethod `json:"productionMethod"`
	Status            *ProductStatus    `json:"status"`
	Sales             *int              `json:"sales" binding:"omitempty,min=0"`
	Variants          *VariantList      `json:"variants"`
}

// UpdateStockRequest sets the absolute stock quantity of a product.
type UpdateStockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}
