package demo

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// seedProducts returns the fixed demo catalog. IDs and codes are stable so
// scans against a printed demo sheet keep working.
func seedProducts() []model.Product {
	return []model.Product{
		{
			ID: "1", Name: "Coca-Cola 500ml", Price: 2.50, Quantity: 25,
			Category: "Beverages", Code: "ABC123",
			Description: "Classic Coca-Cola in 500ml bottle", LowStockThreshold: 5,
		},
		{
			ID: "2", Name: "Marlboro Red", Price: 12.99, Quantity: 3,
			Category: "Tobacco", Code: "MAR001",
			Description: "Marlboro Red cigarettes pack", LowStockThreshold: 5,
			IsLowStock:  true,
		},
		{
			ID: "3", Name: "Heineken Beer 4-Pack", Price: 8.99, Quantity: 15,
			Category: "Alcohol", Code: "HEIN004",
			Description: "Heineken beer 4-pack cans", LowStockThreshold: 10,
		},
		{
			ID: "4", Name: "Milk 1L", Price: 1.85, Quantity: 8,
			Category: "Dairy", Code: "MILK001",
			Description: "Fresh whole milk 1 litre", LowStockThreshold: 5,
			IsExpiringSoon: true,
		},
		{
			ID: "5", Name: "Bread Loaf", Price: 1.20, Quantity: 0,
			Category: "Food", Code: "BREAD01",
			Description: "White bread loaf", LowStockThreshold: 2,
			IsLowStock:  true, IsExpired: true,
		},
	}
}

// movementEntry records one applied quantity change, for the stock-movement
// and sales views.
type movementEntry struct {
	When      time.Time
	ProductID string
	Name      string
	// Units is the change that actually landed after clamping, signed.
	Units int
	// Value is the absolute worth of the moved units at the current price.
	Value float64
}

// catalog is the whole mutable demo state. The workload is single-user, but
// the mutex keeps the fixture safe if two flows ever overlap.
type catalog struct {
	products  []model.Product
	movements []movementEntry
	logs      []model.ActivityLog
	users     []model.UserProfile
}

func newCatalog() *catalog {
	return &catalog{products: seedProducts()}
}

func (c *catalog) list() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *catalog) byID(id string) (*model.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], nil
		}
	}
	return nil, apperr.ErrProductNotFound
}

func (c *catalog) byCode(code string) (*model.Product, error) {
	for i := range c.products {
		if strings.EqualFold(c.products[i].Code, code) {
			return &c.products[i], nil
		}
	}
	return nil, apperr.ErrProductNotFound
}

// adjust applies a signed delta, clamped so quantity never goes below zero,
// and returns the change that actually landed.
func (c *catalog) adjust(id string, delta int, now time.Time) (int, error) {
	p, err := c.byID(id)
	if err != nil {
		return 0, err
	}

	old := p.Quantity
	p.Quantity = max(0, p.Quantity+delta)
	p.RecomputeLowStock()

	applied := p.Quantity - old
	if applied != 0 {
		units := applied
		if units < 0 {
			units = -units
		}
		c.movements = append(c.movements, movementEntry{
			When:      now,
			ProductID: p.ID,
			Name:      p.Name,
			Units:     applied,
			Value:     p.Price * float64(units),
		})
	}
	return applied, nil
}

func (c *catalog) create(form productFields, now time.Time) model.Product {
	p := model.Product{
		ID:                uuid.NewString(),
		Name:              form.Name,
		Price:             form.Price,
		Quantity:          form.Quantity,
		Category:          form.Category,
		Code:              form.Code,
		Description:       form.Description,
		LowStockThreshold: form.LowStockThreshold,
	}
	p.RecomputeLowStock()
	c.products = append(c.products, p)
	return p
}

func (c *catalog) update(id string, form productFields) (model.Product, error) {
	p, err := c.byID(id)
	if err != nil {
		return model.Product{}, err
	}

	p.Name = form.Name
	p.Price = form.Price
	p.Quantity = form.Quantity
	p.Category = form.Category
	p.Code = form.Code
	p.Description = form.Description
	p.LowStockThreshold = form.LowStockThreshold
	p.RecomputeLowStock()
	return *p, nil
}

func (c *catalog) delete(id string) error {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return apperr.ErrProductNotFound
}

func (c *catalog) filter(keep func(model.Product) bool) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// metrics recomputes the dashboard aggregate from the live catalog. No
// caching, no snapshotting.
func (c *catalog) metrics() model.DashboardMetrics {
	m := model.DashboardMetrics{
		TotalProducts: len(c.products),
		TodaysSales:   demoTodaysSales,
	}
	for _, p := range c.products {
		m.TotalValue += p.Value()
		if p.IsLowStock {
			m.LowStock++
		}
		if p.IsExpired {
			m.ExpiredProducts++
		}
		if p.IsExpiringSoon {
			m.ExpiringSoon++
		}
	}
	return m
}

func (c *catalog) inventoryValue() model.InventoryValue {
	var v model.InventoryValue
	for _, p := range c.products {
		v.TotalValue += p.Value()
		v.TotalItems += p.Quantity
	}
	return v
}

// sales buckets outbound movements by day.
func (c *catalog) sales() []model.SalesPoint {
	byDay := map[string]*model.SalesPoint{}
	for _, m := range c.movements {
		if m.Units >= 0 {
			continue
		}
		day := m.When.Format(time.DateOnly)
		point, ok := byDay[day]
		if !ok {
			point = &model.SalesPoint{Date: day}
			byDay[day] = point
		}
		point.Total += m.Value
		point.Count -= m.Units
	}
	return sortedByDate(byDay, func(p model.SalesPoint) string { return p.Date })
}

func (c *catalog) stockMovement() []model.StockMovement {
	byDay := map[string]*model.StockMovement{}
	for _, m := range c.movements {
		day := m.When.Format(time.DateOnly)
		point, ok := byDay[day]
		if !ok {
			point = &model.StockMovement{Date: day}
			byDay[day] = point
		}
		if m.Units > 0 {
			point.In += m.Units
		} else {
			point.Out -= m.Units
		}
	}
	return sortedByDate(byDay, func(p model.StockMovement) string { return p.Date })
}

func (c *catalog) topProducts(limit int) []model.TopProduct {
	sold := map[string]*model.TopProduct{}
	for _, m := range c.movements {
		if m.Units >= 0 {
			continue
		}
		top, ok := sold[m.ProductID]
		if !ok {
			top = &model.TopProduct{ProductID: m.ProductID, Name: m.Name}
			sold[m.ProductID] = top
		}
		top.Sold -= m.Units
		top.Revenue += m.Value
	}

	out := make([]model.TopProduct, 0, len(sold))
	for _, top := range sold {
		out = append(out, *top)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].ProductID < out[j].ProductID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (c *catalog) appendLog(action, productID, userID, detail string, now time.Time) {
	c.logs = append(c.logs, model.ActivityLog{
		ID:        uuid.NewString(),
		Action:    action,
		ProductID: productID,
		UserID:    userID,
		Detail:    detail,
		CreatedAt: now,
	})
}

func sortedByDate[T any](byDay map[string]*T, date func(T) string) []T {
	out := make([]T, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return date(out[i]) < date(out[j]) })
	return out
}
