package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankofamarket/catalog-api/internal/repository"
)

func TestIndexLookupsReturnNilOnAbsence(t *testing.T) {
	ix := NewIndex(repository.SeedCategories())

	assert.Nil(t, ix.CategoryByID("99"))
	assert.Nil(t, ix.SubCategoryByID("99-1"))
	assert.Nil(t, ix.TypeByID("99-1-1"))
	assert.Nil(t, ix.HierarchyForType("99-1-1"))
	assert.Nil(t, ix.TypesByCategory("99"))
}

func TestIndexCategoryLookup(t *testing.T) {
	ix := NewIndex(repository.SeedCategories())

	c := ix.CategoryByID("3")
	require.NotNil(t, c)
	assert.Equal(t, "Beauty & Care", c.Name)

	sc := ix.SubCategoryByID("3-1")
	require.NotNil(t, sc)
	assert.Equal(t, "3", sc.CategoryID)

	typ := ix.TypeByID("3-1-2")
	require.NotNil(t, typ)
	assert.Equal(t, "Black Soaps", typ.Name)
}

func TestTypesByCategoryPreservesHierarchyOrder(t *testing.T) {
	ix := NewIndex(repository.SeedCategories())

	types := ix.TypesByCategory("1")

	ids := make([]string, len(types))
	for i, typ := range types {
		ids[i] = typ.ID
	}
	assert.Equal(t, []string{"1-1-1", "1-1-2", "1-2-1"}, ids)
}

func TestHierarchyForType(t *testing.T) {
	ix := NewIndex(repository.SeedCategories())

	h := ix.HierarchyForType("3-1-2")
	require.NotNil(t, h)
	assert.Equal(t, "3", h.Category.ID)
	assert.Equal(t, "3-1", h.SubCategory.ID)
	assert.Equal(t, "3-1-2", h.Type.ID)
}

func TestAllTypesWalksWholeTree(t *testing.T) {
	ix := NewIndex(repository.SeedCategories())

	types := ix.AllTypes()

	assert.Len(t, types, 8)
	assert.Equal(t, "1-1-1", types[0].ID)
	assert.Equal(t, "5-1-1", types[len(types)-1].ID)
}

func TestIndexOverEmptyTree(t *testing.T) {
	ix := NewIndex(nil)

	assert.Nil(t, ix.CategoryByID("1"))
	assert.Empty(t, ix.AllTypes())
}
