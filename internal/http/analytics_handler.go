package http

import (
	"fmt"
	"net/http"

	"github.com/haiminhng/retail-console/internal/service"
)

type analyticsHandler struct {
	svc *Service
}

func newAnalyticsHandler(svc *Service) *analyticsHandler {
	return &analyticsHandler{svc: svc}
}

type summaryResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalUnits   int     `json:"total_units"`
	TotalStock   int     `json:"total_stock"`
}

type dailyRevenueResponse struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

type unitRankResponse struct {
	Label string `json:"label"`
	Units int    `json:"units"`
}

func (h *analyticsHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.analyticsSvc.Summary(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service summary: %w", err))
		return
	}

	h.svc.respond(w, r, http.StatusOK, summaryResponse{
		TotalRevenue: summary.TotalRevenue,
		TotalUnits:   summary.TotalUnits,
		TotalStock:   summary.TotalStock,
	})
}

func (h *analyticsHandler) dailyRevenue(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.analyticsSvc.DailyRevenue(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service daily revenue: %w", err))
		return
	}

	items := make([]dailyRevenueResponse, 0, len(points))
	for _, point := range points {
		items = append(items, dailyRevenueResponse{
			Day:     point.Day.Format("2006-01-02"),
			Revenue: point.Revenue,
		})
	}

	h.svc.respond(w, r, http.StatusOK, items)
}

func (h *analyticsHandler) categoryRanking(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.svc.analyticsSvc.CategoryRanking(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service category ranking: %w", err))
		return
	}

	h.svc.respond(w, r, http.StatusOK, ranksToResponse(ranks))
}

func (h *analyticsHandler) sizeRanking(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.svc.analyticsSvc.SizeRanking(r.Context())
	if err != nil {
		h.svc.respondError(w, r, fmt.Errorf("analytics service size ranking: %w", err))
		return
	}

	h.svc.respond(w, r, http.StatusOK, ranksToResponse(ranks))
}

func ranksToResponse(ranks []service.UnitRank) []unitRankResponse {
	items := make([]unitRankResponse, 0, len(ranks))
	for _, rank := range ranks {
		items = append(items, unitRankResponse{Label: rank.Label, Units: rank.Units})
	}
	return items
}
