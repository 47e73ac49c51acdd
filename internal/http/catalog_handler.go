package http

import (
	"fmt"
	"net/http"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/service"
)

type catalogHandler struct {
	svc *Service
}

func newCatalogHandler(svc *Service) *catalogHandler {
	return &catalogHandler{svc: svc}
}

type productResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
}

type lowStockResponse struct {
	Threshold int               `json:"threshold"`
	Count     int               `json:"count"`
	Products  []productResponse `json:"products"`
}

func (h *catalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.catalogSvc.ListProducts(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("catalog service list products: %w", err))
		return
	}

	h.svc.respond(w, r, http.StatusOK, productsToResponse(products))
}

func (h *catalogHandler) lowStock(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.analyticsSvc.LowStock(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service low stock: %w", err))
		return
	}

	h.svc.respond(w, r, http.StatusOK, lowStockReportToResponse(report))
}

func productsToResponse(products []model.Product) []productResponse {
	items := make([]productResponse, 0, len(products))
	for _, p := range products {
		items = append(items, productToResponse(p))
	}
	return items
}

func productToResponse(p model.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Sizes:    p.Sizes,
		Colors:   p.Colors,
		Price:    p.Price,
		Stock:    p.Stock,
	}
}

func lowStockReportToResponse(report service.LowStockReport) lowStockResponse {
	return lowStockResponse{
		Threshold: report.Threshold,
		Count:     len(report.Products),
		Products:  productsToResponse(report.Products),
	}
}
