package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/haiminhng/retail-console/internal/apperr"
	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/repository"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

var tracer = otel.Tracer("internal/service")

type RecordSaleParams struct {
	ProductID  string
	CustomerID string
	Qty        int
	// Size optionally captures the size variant sold. When set it must be
	// one of the product's listed sizes.
	Size     string
	Discount float64
}

type SaleService interface {
	// RecordSale validates params against the current catalog, appends a
	// sale to the ledger and decrements the product's stock. Both side
	// effects apply as one unit; a failed call leaves the state untouched.
	RecordSale(ctx context.Context, params RecordSaleParams) (model.Sale, error)

	// ListSales returns the ledger newest first, capped at limit when
	// limit is positive.
	ListSales(ctx context.Context, limit int) ([]model.Sale, error)
}

type saleService struct {
	db           memdb.DB
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

func NewSaleService(
	db memdb.DB,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) SaleService {
	return &saleService{
		db:           db,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

func (s *saleService) RecordSale(ctx context.Context, params RecordSaleParams) (model.Sale, error) {
	ctx, span := tracer.Start(ctx, "SaleService.RecordSale")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return model.Sale{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	var sale model.Sale
	if err := s.db.WithTx(ctx, func(tx memdb.DB) error {
		product, err := s.productRepo.WithDB(tx).GetProduct(ctx, params.ProductID)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		if _, err := s.customerRepo.WithDB(tx).GetCustomer(ctx, params.CustomerID); err != nil {
			return fmt.Errorf("customer repository get customer: %w", err)
		}

		if params.Qty <= 0 || params.Qty > product.Stock {
			return apperr.InvalidQuantityErr
		}
		if params.Discount < 0 || params.Discount > 100 {
			return apperr.InvalidDiscountErr
		}
		if params.Size != "" && !product.HasSize(params.Size) {
			return apperr.InvalidSizeErr
		}

		subtotal := product.Price * float64(params.Qty)
		total := subtotal * (1 - params.Discount/100)
		if total < 0 {
			total = 0
		}

		sale = model.Sale{
			ID:         id,
			ProductID:  params.ProductID,
			CustomerID: params.CustomerID,
			Qty:        params.Qty,
			Size:       params.Size,
			Discount:   params.Discount,
			Total:      round2(total),
			Date:       time.Now(),
		}

		if err := s.saleRepo.WithDB(tx).PrependSale(ctx, sale); err != nil {
			return fmt.Errorf("sale repository prepend sale: %w", err)
		}

		if err := s.productRepo.WithDB(tx).DecrementStock(ctx, params.ProductID, params.Qty); err != nil {
			return fmt.Errorf("product repository decrement stock: %w", err)
		}

		return nil
	}); err != nil {
		return model.Sale{}, err
	}

	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, limit int) ([]model.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("sale repository list sales: %w", err)
	}

	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}

	return sales, nil
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
