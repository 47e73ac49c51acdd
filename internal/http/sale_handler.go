package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/haiminhng/retail-console/internal/apperr"
	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/service"
	"github.com/haiminhng/retail-console/pkg/validator"
)

type saleHandler struct {
	svc      *Service
	validate validator.Validator
}

func newSaleHandler(svc *Service) *saleHandler {
	return &saleHandler{
		svc:      svc,
		validate: validator.NewDefaultValidator(),
	}
}

type recordSaleRequest struct {
	ProductID  string  `json:"product_id" validate:"required"`
	CustomerID string  `json:"customer_id" validate:"required"`
	Qty        int     `json:"qty" validate:"required,gt=0"`
	Size       string  `json:"size"`
	Discount   float64 `json:"discount" validate:"gte=0,lte=100"`
}

type saleResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Qty        int       `json:"qty"`
	Size       string    `json:"size,omitempty"`
	Discount   float64   `json:"discount"`
	Total      float64   `json:"total"`
	Date       time.Time `json:"date"`
}

func (h *saleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	if err := h.validate.Validate(req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	sale, err := h.svc.saleSvc.RecordSale(r.Context(), service.RecordSaleParams{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Qty:        req.Qty,
		Size:       req.Size,
		Discount:   req.Discount,
	})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.metrics.SalesRecordedTotal.Inc()
	h.svc.metrics.RevenueTotal.Add(sale.Total)

	h.svc.respond(w, r, http.StatusCreated, saleToResponse(sale))
}

func (h *saleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = parsed
	}

	sales, err := h.svc.saleSvc.ListSales(r.Context(), limit)
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("sale service list sales: %w", err))
		return
	}

	items := make([]saleResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, saleToResponse(sale))
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func saleToResponse(sale model.Sale) saleResponse {
	return saleResponse{
		ID:         sale.ID,
		ProductID:  sale.ProductID,
		CustomerID: sale.CustomerID,
		Qty:        sale.Qty,
		Size:       sale.Size,
		Discount:   sale.Discount,
		Total:      sale.Total,
		Date:       sale.Date,
	}
}
