package seed_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiminhng/retail-console/internal/seed"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

func TestApply(t *testing.T) {
	store := memdb.NewStore()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, seed.Apply(context.Background(), store, now))

	require.NoError(t, store.View(context.Background(), func(s *memdb.State) error {
		assert.Len(t, s.Products, 6)
		assert.Len(t, s.Customers, 3)
		assert.Len(t, s.Sales, 6)
		return nil
	}))
}

func TestSalesReferentialIntegrity(t *testing.T) {
	now := time.Now()
	products := seed.Products()
	customers := seed.Customers()
	sales := seed.Sales(now)

	productIDs := make(map[string]struct{})
	for _, p := range products {
		productIDs[p.ID] = struct{}{}
		assert.NotEmpty(t, p.Sizes, "every product lists at least one size")
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
	customerIDs := make(map[string]struct{})
	for _, c := range customers {
		customerIDs[c.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, sale := range sales {
		_, ok := productIDs[sale.ProductID]
		assert.True(t, ok, "sale references product %s", sale.ProductID)
		_, ok = customerIDs[sale.CustomerID]
		assert.True(t, ok, "sale references customer %s", sale.CustomerID)

		_, dup := seen[sale.ID.String()]
		assert.False(t, dup, "duplicate sale id")
		seen[sale.ID.String()] = struct{}{}
	}
}

func TestSalesAreNewestFirstAndBackdated(t *testing.T) {
	now := time.Now()
	sales := seed.Sales(now)

	for i, sale := range sales {
		assert.True(t, sale.Date.Before(now), "seed sales are backdated")
		if i > 0 {
			assert.True(t, sale.Date.Before(sales[i-1].Date), "ledger is newest first")
		}
	}
}

func TestSaleTotalsMatchPricing(t *testing.T) {
	products := seed.Products()
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	for _, sale := range seed.Sales(time.Now()) {
		want := prices[sale.ProductID] * float64(sale.Qty) * (1 - sale.Discount/100)
		want = math.Round(want*100) / 100
		assert.InDelta(t, want, sale.Total, 1e-9, "total for product %s", sale.ProductID)
	}
}
