package demo_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/backend/demo"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

func newService(t *testing.T, opts ...demo.Option) *demo.Service {
	t.Helper()
	opts = append([]demo.Option{demo.WithoutLatency()}, opts...)
	return demo.New(slog.New(slog.DiscardHandler), opts...)
}

func TestFabricateSession(t *testing.T) {
	t.Run("Should grant admin when username contains admin", func(t *testing.T) {
		sess := demo.FabricateSession("shopadmin@offlicense.com")
		assert.Equal(t, model.RoleAdmin, sess.User.Role)
	})

	t.Run("Should default everyone else to staff", func(t *testing.T) {
		sess := demo.FabricateSession("clerk@offlicense.com")
		assert.Equal(t, model.RoleStaff, sess.User.Role)
	})

	t.Run("Should mint unique demo tokens", func(t *testing.T) {
		a := demo.FabricateSession("a")
		b := demo.FabricateSession("a")
		assert.Contains(t, a.Token, "demo-token-")
		assert.NotEqual(t, a.Token, b.Token)
	})
}

func TestGetByCode(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	t.Run("Should match scan codes case-insensitively", func(t *testing.T) {
		p, err := svc.GetByCode(ctx, "bread01")
		require.NoError(t, err)
		assert.Equal(t, "5", p.ID)

		same, err := svc.GetByCode(ctx, "BREAD01")
		require.NoError(t, err)
		assert.Equal(t, p.ID, same.ID)
	})

	t.Run("Should report unknown codes as not found", func(t *testing.T) {
		_, err := svc.GetByCode(ctx, "NOPE999")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestAdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply a positive delta", func(t *testing.T) {
		svc := newService(t)

		require.NoError(t, svc.AdjustQuantity(ctx, "1", 5))

		p, err := svc.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 30, p.Quantity)
	})

	t.Run("Should clamp the quantity at zero", func(t *testing.T) {
		svc := newService(t)

		require.NoError(t, svc.AdjustQuantity(ctx, "1", -100))

		p, err := svc.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity)
		assert.True(t, p.IsLowStock)
	})

	t.Run("Should recompute the low-stock flag on every change", func(t *testing.T) {
		svc := newService(t)

		// Milk: quantity 8, threshold 5.
		require.NoError(t, svc.AdjustQuantity(ctx, "4", -3))

		p, err := svc.Get(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, 5, p.Quantity)
		assert.True(t, p.IsLowStock)

		require.NoError(t, svc.AdjustQuantity(ctx, "4", 10))
		p, err = svc.Get(ctx, "4")
		require.NoError(t, err)
		assert.False(t, p.IsLowStock)
	})

	t.Run("Should report unknown products as not found", func(t *testing.T) {
		svc := newService(t)
		err := svc.AdjustQuantity(ctx, "999", 1)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestReduceStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reduce within available stock", func(t *testing.T) {
		svc := newService(t)

		// Marlboro Red starts at 3.
		err := svc.ReduceStock(ctx, backend.ReduceStockParams{ProductID: "2", Quantity: 1, Reason: "Sale"})
		require.NoError(t, err)

		p, err := svc.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 2, p.Quantity)
		assert.True(t, p.IsLowStock, "still under the threshold of 5")
	})

	t.Run("Should clamp an over-reduction at zero", func(t *testing.T) {
		svc := newService(t)

		err := svc.ReduceStock(ctx, backend.ReduceStockParams{ProductID: "2", Quantity: 10, Reason: "Sale"})
		require.NoError(t, err)

		p, err := svc.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity)
		assert.True(t, p.IsLowStock)
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Should aggregate the seeded catalog", func(t *testing.T) {
		svc := newService(t)

		m, err := svc.Dashboard(ctx)
		require.NoError(t, err)

		products, err := svc.List(ctx, backend.ListProductsParams{})
		require.NoError(t, err)

		var wantValue float64
		for _, p := range products {
			wantValue += p.Price * float64(p.Quantity)
		}

		assert.Equal(t, 5, m.TotalProducts)
		assert.Equal(t, 42, m.TodaysSales)
		assert.InDelta(t, wantValue, m.TotalValue, 0.001)
		assert.Equal(t, 2, m.LowStock)
		assert.Equal(t, 1, m.ExpiredProducts)
		assert.Equal(t, 1, m.ExpiringSoon)
	})

	t.Run("Should recompute after a mutation instead of caching", func(t *testing.T) {
		svc := newService(t)

		before, err := svc.Dashboard(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.AdjustQuantity(ctx, "1", -10))

		after, err := svc.Dashboard(ctx)
		require.NoError(t, err)
		assert.InDelta(t, before.TotalValue-10*2.50, after.TotalValue, 0.001)
	})
}

func TestAnalyticsDerivedFromMovements(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	svc := newService(t, demo.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, svc.ReduceStock(ctx, backend.ReduceStockParams{ProductID: "1", Quantity: 4, Reason: "Sale"}))
	require.NoError(t, svc.ReduceStock(ctx, backend.ReduceStockParams{ProductID: "3", Quantity: 2, Reason: "Sale"}))
	require.NoError(t, svc.AdjustQuantity(ctx, "4", 6))

	t.Run("Sales buckets outbound movements by day", func(t *testing.T) {
		points, err := svc.Sales(ctx, backend.SalesParams{})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, "2026-03-14", points[0].Date)
		assert.Equal(t, 6, points[0].Count)
		assert.InDelta(t, 4*2.50+2*8.99, points[0].Total, 0.001)
	})

	t.Run("TopProducts ranks by units sold", func(t *testing.T) {
		top, err := svc.TopProducts(ctx, backend.TopProductsParams{})
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "1", top[0].ProductID)
		assert.Equal(t, 4, top[0].Sold)
		assert.Equal(t, "3", top[1].ProductID)
	})

	t.Run("StockMovement splits inbound and outbound", func(t *testing.T) {
		moves, err := svc.StockMovement(ctx, backend.StockMovementParams{})
		require.NoError(t, err)
		require.Len(t, moves, 1)
		assert.Equal(t, 6, moves[0].In)
		assert.Equal(t, 6, moves[0].Out)
	})

	t.Run("Activity log records every operation", func(t *testing.T) {
		logs, err := svc.Logs(ctx, backend.ActivityLogsParams{Action: "stock_reduce"})
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})
}

func TestProductLifecycle(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	form := backend.ProductForm{
		Name: "Crisps", Price: 0.99, Quantity: 40,
		Category: "Snacks", Code: "CRISP01", LowStockThreshold: 10,
	}

	created, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsLowStock)

	form.Quantity = 8
	updated, err := svc.Update(ctx, created.ID, form)
	require.NoError(t, err)
	assert.True(t, updated.IsLowStock)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSimulatedLatencyHonorsCancellation(t *testing.T) {
	svc := demo.New(slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, model.Credentials{Email: "a", Password: "b"})
	assert.ErrorIs(t, err, context.Canceled)
}
