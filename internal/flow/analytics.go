package flow

import (
	"context"
	"fmt"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// Analytics backs the dashboard and analytics screens.
type Analytics struct {
	analytics backend.Analytics
}

func NewAnalytics(analytics backend.Analytics) *Analytics {
	return &Analytics{analytics: analytics}
}

// Dashboard fetches the current metrics; the aggregate is recomputed by the
// backend on every call.
func (f *Analytics) Dashboard(ctx context.Context) (model.DashboardMetrics, error) {
	return f.analytics.Dashboard(ctx)
}

// Report is what the analytics screen shows in one load.
type Report struct {
	Sales          []model.SalesPoint
	TopProducts    []model.TopProduct
	InventoryValue model.InventoryValue
}

// Report gathers the analytics screen's data. The calls are sequential; the
// screen shows nothing until all of them are in anyway.
func (f *Analytics) Report(ctx context.Context, sales backend.SalesParams, tops backend.TopProductsParams) (Report, error) {
	var r Report
	var err error

	if r.Sales, err = f.analytics.Sales(ctx, sales); err != nil {
		return Report{}, fmt.Errorf("fetch sales: %w", err)
	}
	if r.TopProducts, err = f.analytics.TopProducts(ctx, tops); err != nil {
		return Report{}, fmt.Errorf("fetch top products: %w", err)
	}
	if r.InventoryValue, err = f.analytics.InventoryValue(ctx); err != nil {
		return Report{}, fmt.Errorf("fetch inventory value: %w", err)
	}
	return r, nil
}
