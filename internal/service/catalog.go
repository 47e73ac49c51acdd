package service

import (
	"context"
	"fmt"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/repository"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}
