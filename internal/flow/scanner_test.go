package flow_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/flow"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// fakeProducts records the calls the scanner makes. Unoverridden methods
// panic via the embedded nil interface, which is exactly what a test wants.
type fakeProducts struct {
	backend.Products

	byCode map[string]model.Product

	lookups     []string
	adjustments []adjustment
	reductions  []backend.ReduceStockParams
}

type adjustment struct {
	ID    string
	Delta int
}

func (f *fakeProducts) GetByCode(_ context.Context, code string) (model.Product, error) {
	f.lookups = append(f.lookups, code)
	p, ok := f.byCode[code]
	if !ok {
		return model.Product{}, apperr.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProducts) AdjustQuantity(_ context.Context, id string, delta int) error {
	f.adjustments = append(f.adjustments, adjustment{ID: id, Delta: delta})
	return nil
}

func (f *fakeProducts) ReduceStock(_ context.Context, params backend.ReduceStockParams) error {
	f.reductions = append(f.reductions, params)
	return nil
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{
		byCode: map[string]model.Product{
			"ABC123": {ID: "1", Name: "Coca-Cola 500ml", Code: "ABC123", Quantity: 25},
		},
	}
}

func newScanner(fake *fakeProducts) *flow.Scanner {
	return flow.NewScanner(fake, slog.New(slog.DiscardHandler))
}

func TestScannerScan(t *testing.T) {
	ctx := context.Background()

	t.Run("Should find the product and hold it", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		p, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "1", p.ID)
		assert.Equal(t, flow.StateProductFound, sc.State())

		held, ok := sc.Product()
		assert.True(t, ok)
		assert.Equal(t, p, held)
	})

	t.Run("Should not repeat the lookup for an identical scan", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)

		p, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "1", p.ID)
		assert.Equal(t, []string{"ABC123"}, fake.lookups)
	})

	t.Run("Should not repeat a failed lookup either", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "NOPE")
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, flow.StateIdle, sc.State())

		_, err = sc.Scan(ctx, "NOPE")
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, []string{"NOPE"}, fake.lookups)
	})

	t.Run("Should reject an empty code before any dispatch", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "")
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, fake.lookups)
	})
}

func TestScannerSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should trim and look up manual input every time", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Submit(ctx, "  ABC123  ")
		require.NoError(t, err)
		_, err = sc.Submit(ctx, "ABC123")
		require.NoError(t, err)

		assert.Equal(t, []string{"ABC123", "ABC123"}, fake.lookups)
	})

	t.Run("Should reject blank input", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Submit(ctx, "   ")
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, fake.lookups)
	})
}

func TestScannerQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-positive and non-numeric input locally", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)

		for _, input := range []string{"abc", "0", "-2", ""} {
			assert.True(t, apperr.IsValidation(sc.SetQuantity(input)), "input %q", input)
		}

		require.NoError(t, sc.Confirm(ctx))
		require.Len(t, fake.reductions, 1)
		assert.Equal(t, 1, fake.reductions[0].Quantity, "rejected input must not change the quantity")
	})
}

func TestScannerConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Reduce sends a sale reduction and resets", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		require.NoError(t, sc.SelectOperation(flow.OperationReduce))
		require.NoError(t, sc.SetQuantity("3"))
		require.NoError(t, sc.Confirm(ctx))

		require.Len(t, fake.reductions, 1)
		assert.Equal(t, backend.ReduceStockParams{
			ProductID: "1", Quantity: 3, Reason: "Sale",
		}, fake.reductions[0])

		assert.Equal(t, flow.StateIdle, sc.State())
		_, ok := sc.Product()
		assert.False(t, ok)
	})

	t.Run("Add adjusts by a positive delta", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		require.NoError(t, sc.SelectOperation(flow.OperationAdd))
		require.NoError(t, sc.SetQuantity("5"))
		require.NoError(t, sc.Confirm(ctx))

		require.Len(t, fake.adjustments, 1)
		assert.Equal(t, adjustment{ID: "1", Delta: 5}, fake.adjustments[0])
	})

	t.Run("Should refuse to confirm without a product", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		err := sc.Confirm(ctx)
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, fake.adjustments)
		assert.Empty(t, fake.reductions)
	})

	t.Run("A rescan after confirming does a fresh lookup", func(t *testing.T) {
		fake := newFakeProducts()
		sc := newScanner(fake)

		_, err := sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		require.NoError(t, sc.Confirm(ctx))

		_, err = sc.Scan(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, []string{"ABC123", "ABC123"}, fake.lookups)
	})
}

func TestScannerCancel(t *testing.T) {
	fake := newFakeProducts()
	sc := newScanner(fake)

	_, err := sc.Scan(context.Background(), "ABC123")
	require.NoError(t, err)

	sc.Cancel()
	assert.Equal(t, flow.StateIdle, sc.State())
	_, ok := sc.Product()
	assert.False(t, ok)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, flow.UserMessage(nil))
	assert.Equal(t, "No product found with this code.", flow.UserMessage(apperr.ErrProductNotFound))
	assert.Equal(t, "Cannot connect to server.", flow.UserMessage(apperr.ErrBackendUnavailable))
	assert.Equal(t, "Invalid credentials. Please check your username and password.",
		flow.UserMessage(apperr.ErrInvalidCredentials))
}
