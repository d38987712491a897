package catalog

import "github.com/sankofamarket/catalog-api/internal/models"

// Index provides id-based and hierarchical lookups over a category snapshot.
// Lookups return nil on absence; callers must handle it.
type Index struct {
	categories []models.Category
}

// NewIndex builds an index over the given hierarchy snapshot.
func NewIndex(categories []models.Category) *Index {
	return &Index{categories: categories}
}

// CategoryByID returns the matching category or nil.
func (ix *Index) CategoryByID(id string) *models.Category {
	for i := range ix.categories {
		if ix.categories[i].ID == id {
			c := ix.categories[i]
			return &c
		}
	}
	return nil
}

// SubCategoryByID searches across all categories' children.
func (ix *Index) SubCategoryByID(id string) *models.SubCategory {
	for i := range ix.categories {
		for j := range ix.categories[i].SubCategories {
			if ix.categories[i].SubCategories[j].ID == id {
				sc := ix.categories[i].SubCategories[j]
				return &sc
			}
		}
	}
	return nil
}

// TypeByID searches the whole tree for a SubCategoryType.
func (ix *Index) TypeByID(id string) *models.SubCategoryType {
	for i := range ix.categories {
		for j := range ix.categories[i].SubCategories {
			for k := range ix.categories[i].SubCategories[j].Types {
				if ix.categories[i].SubCategories[j].Types[k].ID == id {
					t := ix.categories[i].SubCategories[j].Types[k]
					return &t
				}
			}
		}
	}
	return nil
}

// TypesByCategory flattens all types across the category's subcategories,
// preserving subcategory then type insertion order. Unknown category ids
// yield an empty slice.
func (ix *Index) TypesByCategory(categoryID string) []models.SubCategoryType {
	c := ix.CategoryByID(categoryID)
	if c == nil {
		return nil
	}
	var types []models.SubCategoryType
	for _, sc := range c.SubCategories {
		types = append(types, sc.Types...)
	}
	return types
}

// HierarchyForType returns the full {category, subCategory, type} triple for
// a type id, or nil when the type is unknown.
func (ix *Index) HierarchyForType(typeID string) *models.TypeHierarchy {
	for i := range ix.categories {
		for j := range ix.categories[i].SubCategories {
			for k := range ix.categories[i].SubCategories[j].Types {
				if ix.categories[i].SubCategories[j].Types[k].ID == typeID {
					return &models.TypeHierarchy{
						Category:    ix.categories[i],
						SubCategory: ix.categories[i].SubCategories[j],
						Type:        ix.categories[i].SubCategories[j].Types[k],
					}
				}
			}
		}
	}
	return nil
}

// AllTypes returns every type in the tree in hierarchy order.
func (ix *Index) AllTypes() []models.SubCategoryType {
	var types []models.SubCategoryType
	for _, c := range ix.categories {
		for _, sc := range c.SubCategories {
			types = append(types, sc.Types...)
		}
	}
	return types
}
