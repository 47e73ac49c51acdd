package memdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should expose updates to subsequent views", func(t *testing.T) {
		store := memdb.NewStore()

		require.NoError(t, store.Update(ctx, func(s *memdb.State) error {
			s.Products = []model.Product{{ID: "p1", Name: "Slim Fit Indigo", Stock: 3}}
			return nil
		}))

		var got []model.Product
		require.NoError(t, store.View(ctx, func(s *memdb.State) error {
			got = s.Products
			return nil
		}))
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("Should propagate errors from the closure", func(t *testing.T) {
		store := memdb.NewStore()
		wantErr := errors.New("boom")

		err := store.Update(ctx, func(s *memdb.State) error { return wantErr })
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("Should apply multi-step writes as one unit inside WithTx", func(t *testing.T) {
		store := memdb.NewStore()
		require.NoError(t, store.Update(ctx, func(s *memdb.State) error {
			s.Products = []model.Product{{ID: "p1", Stock: 5}}
			return nil
		}))

		require.NoError(t, store.WithTx(ctx, func(tx memdb.DB) error {
			if err := tx.Update(ctx, func(s *memdb.State) error {
				s.Sales = append(s.Sales, model.Sale{ProductID: "p1", Qty: 2})
				return nil
			}); err != nil {
				return err
			}
			return tx.Update(ctx, func(s *memdb.State) error {
				s.Products[0].Stock -= 2
				return nil
			})
		}))

		require.NoError(t, store.View(ctx, func(s *memdb.State) error {
			assert.Equal(t, 3, s.Products[0].Stock)
			assert.Len(t, s.Sales, 1)
			return nil
		}))
	})

	t.Run("Should refuse work on a cancelled context", func(t *testing.T) {
		store := memdb.NewStore()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, store.View(cancelled, func(s *memdb.State) error { return nil }), context.Canceled)
		assert.ErrorIs(t, store.Update(cancelled, func(s *memdb.State) error { return nil }), context.Canceled)
		assert.ErrorIs(t, store.WithTx(cancelled, func(tx memdb.DB) error { return nil }), context.Canceled)
	})
}
