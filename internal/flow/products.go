package flow

import (
	"context"
	"sort"
	"strings"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// Products backs the product list screen: one fetch, then search and
// category filtering applied locally, the way the screen behaves.
type Products struct {
	products backend.Products
}

func NewProducts(products backend.Products) *Products {
	return &Products{products: products}
}

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Browse fetches the catalog and filters it. The search term matches name,
// category and code, case-insensitively.
func (f *Products) Browse(ctx context.Context, search, category string) ([]model.Product, error) {
	list, err := f.products.List(ctx, backend.ListProductsParams{})
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && category != CategoryAll

	var out []model.Product
	for _, p := range list {
		if filterCategory && p.Category != category {
			continue
		}
		if search != "" && !matches(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Detail fetches one product by id.
func (f *Products) Detail(ctx context.Context, id string) (model.Product, error) {
	return f.products.Get(ctx, id)
}

// Categories returns the distinct categories of the list, sorted, with the
// catch-all first.
func Categories(list []model.Product) []string {
	seen := map[string]bool{}
	for _, p := range list {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}

	out := make([]string, 0, len(seen)+1)
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return append([]string{CategoryAll}, out...)
}

func matches(p model.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Category), search) ||
		strings.Contains(strings.ToLower(p.Code), search)
}
