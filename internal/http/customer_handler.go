package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/pkg/ptr"
)

type customerHandler struct {
	svc *Service
}

func newCustomerHandler(svc *Service) *customerHandler {
	return &customerHandler{svc: svc}
}

type customerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerInsightResponse struct {
	Customer         customerResponse `json:"customer"`
	TotalSpent       float64          `json:"total_spent"`
	FavoriteCategory string           `json:"favorite_category,omitempty"`
	LastPurchaseAt   *time.Time       `json:"last_purchase_at,omitempty"`
	RecentPurchases  []saleResponse   `json:"recent_purchases"`
}

func (h *customerHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.customerSvc.ListCustomers(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("customer service list customers: %w", err))
		return
	}

	items := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, customerToResponse(c))
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func (h *customerHandler) customerInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.analyticsSvc.CustomerInsights(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service customer insights: %w", err))
		return
	}

	items := make([]customerInsightResponse, 0, len(insights))
	for _, insight := range insights {
		res := customerInsightResponse{
			Customer:         customerToResponse(insight.Customer),
			TotalSpent:       insight.TotalSpent,
			FavoriteCategory: insight.FavoriteCategory,
			RecentPurchases:  make([]saleResponse, 0, len(insight.RecentPurchases)),
		}
		if insight.LastPurchase != nil {
			res.LastPurchaseAt = ptr.New(insight.LastPurchase.Date)
		}
		for _, sale := range insight.RecentPurchases {
			res.RecentPurchases = append(res.RecentPurchases, saleToResponse(sale))
		}
		items = append(items, res)
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func customerToResponse(c model.Customer) customerResponse {
	return customerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}
