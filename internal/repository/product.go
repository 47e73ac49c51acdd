package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/haiminhng/retail-console/internal/apperr"
	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

type ProductRepository interface {
	WithDB(db memdb.DB) ProductRepository
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	DecrementStock(ctx context.Context, id string, qty int) error
}

type productRepository struct {
	db memdb.DB
}

func NewProductRepository(db memdb.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db memdb.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var product model.Product
	if err := r.db.View(ctx, func(s *memdb.State) error {
		i := slices.IndexFunc(s.Products, func(p model.Product) bool { return p.ID == id })
		if i < 0 {
			return apperr.ProductNotFoundErr
		}
		product = cloneProduct(s.Products[i])
		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return product, nil
}

func (r productRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.View(ctx, func(s *memdb.State) error {
		products = make([]model.Product, 0, len(s.Products))
		for _, p := range s.Products {
			products = append(products, cloneProduct(p))
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// DecrementStock lowers the product's stock by qty, floored at zero. Callers
// validate qty against current stock first; the floor only guards against a
// bypassed contract.
func (r productRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		i := slices.IndexFunc(s.Products, func(p model.Product) bool { return p.ID == id })
		if i < 0 {
			return apperr.ProductNotFoundErr
		}
		s.Products[i].Stock = max(s.Products[i].Stock-qty, 0)
		return nil
	})
}

func cloneProduct(p model.Product) model.Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	return p
}
