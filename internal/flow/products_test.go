package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/flow"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

type listOnlyProducts struct {
	backend.Products
	list []model.Product
}

func (f *listOnlyProducts) List(context.Context, backend.ListProductsParams) ([]model.Product, error) {
	return f.list, nil
}

func catalogFixture() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Coca-Cola 500ml", Category: "Beverages", Code: "ABC123"},
		{ID: "3", Name: "Heineken Beer 4-Pack", Category: "Alcohol", Code: "HEIN004"},
		{ID: "4", Name: "Milk 1L", Category: "Dairy", Code: "MILK001"},
	}
}

func TestBrowse(t *testing.T) {
	f := flow.NewProducts(&listOnlyProducts{list: catalogFixture()})
	ctx := context.Background()

	t.Run("No filters returns everything", func(t *testing.T) {
		got, err := f.Browse(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("The catch-all category filters nothing", func(t *testing.T) {
		got, err := f.Browse(ctx, "", flow.CategoryAll)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Category filter is exact", func(t *testing.T) {
		got, err := f.Browse(ctx, "", "Dairy")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "4", got[0].ID)
	})

	t.Run("Search matches name, category and code, case-insensitively", func(t *testing.T) {
		byName, err := f.Browse(ctx, "cola", "")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "1", byName[0].ID)

		byCode, err := f.Browse(ctx, "hein", "")
		require.NoError(t, err)
		require.Len(t, byCode, 1)
		assert.Equal(t, "3", byCode[0].ID)

		byCategory, err := f.Browse(ctx, "dairy", "")
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, "4", byCategory[0].ID)
	})

	t.Run("Search and category combine", func(t *testing.T) {
		got, err := f.Browse(ctx, "cola", "Dairy")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCategories(t *testing.T) {
	got := flow.Categories(catalogFixture())
	assert.Equal(t, []string{"All", "Alcohol", "Beverages", "Dairy"}, got)
}
