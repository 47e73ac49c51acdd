package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

type SaleRepository interface {
	WithDB(db memdb.DB) SaleRepository
	// PrependSale appends the sale to the front of the ledger.
	PrependSale(ctx context.Context, sale model.Sale) error
	// ListSales returns the ledger, newest first.
	ListSales(ctx context.Context) ([]model.Sale, error)
}

type saleRepository struct {
	db memdb.DB
}

func NewSaleRepository(db memdb.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r saleRepository) WithDB(db memdb.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r saleRepository) PrependSale(ctx context.Context, sale model.Sale) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Sales = slices.Insert(s.Sales, 0, sale)
		return nil
	})
}

func (r saleRepository) ListSales(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.View(ctx, func(s *memdb.State) error {
		sales = slices.Clone(s.Sales)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	return sales, nil
}
