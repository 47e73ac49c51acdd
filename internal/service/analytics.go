package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

// DailyRevenuePoint is the revenue summed over one calendar day.
type DailyRevenuePoint struct {
	Day     time.Time
	Revenue float64
}

// UnitRank is a label (category or size) with its cumulative units sold.
type UnitRank struct {
	Label string
	Units int
}

// LowStockReport lists products at or below the low-stock threshold.
type LowStockReport struct {
	Threshold int
	Products  []model.Product
}

// CustomerInsight is the derived purchase profile of one customer.
type CustomerInsight struct {
	Customer   model.Customer
	TotalSpent float64
	// FavoriteCategory is the category with the highest cumulative
	// quantity; ties break to the lexicographically smallest label.
	// Empty when the customer has no purchases.
	FavoriteCategory string
	LastPurchase     *model.Sale
	// RecentPurchases holds the customer's sales, newest first, capped at
	// recentPurchaseLimit.
	RecentPurchases []model.Sale
}

// Summary aggregates the whole session.
type Summary struct {
	TotalRevenue float64
	TotalUnits   int
	TotalStock   int
}

const recentPurchaseLimit = 4

// AnalyticsService derives read-only views from the current session
// snapshot. Every call recomputes from scratch; nothing is cached and
// nothing is mutated, so two calls without an intervening sale are
// identical.
type AnalyticsService interface {
	DailyRevenue(ctx context.Context) ([]DailyRevenuePoint, error)
	CategoryRanking(ctx context.Context) ([]UnitRank, error)
	SizeRanking(ctx context.Context) ([]UnitRank, error)
	LowStock(ctx context.Context) (LowStockReport, error)
	CustomerInsights(ctx context.Context) ([]CustomerInsight, error)
	Summary(ctx context.Context) (Summary, error)
}

type analyticsService struct {
	db                memdb.DB
	lowStockThreshold int
}

func NewAnalyticsService(db memdb.DB, lowStockThreshold int) AnalyticsService {
	return &analyticsService{
		db:                db,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *analyticsService) DailyRevenue(ctx context.Context) ([]DailyRevenuePoint, error) {
	var points []DailyRevenuePoint
	if err := s.db.View(ctx, func(st *memdb.State) error {
		byDay := make(map[time.Time]float64)
		for _, sale := range st.Sales {
			byDay[dayOf(sale.Date)] += sale.Total
		}

		points = make([]DailyRevenuePoint, 0, len(byDay))
		for day, revenue := range byDay {
			points = append(points, DailyRevenuePoint{Day: day, Revenue: round2(revenue)})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view state: %w", err)
	}

	return points, nil
}

func (s *analyticsService) CategoryRanking(ctx context.Context) ([]UnitRank, error) {
	return s.ranking(ctx, func(sale model.Sale, product model.Product) string {
		return product.Category
	})
}

// SizeRanking attributes units to the sale's recorded size. Sales without a
// recorded size count toward the product's first listed size, an
// approximation carried over from how the seed data is shaped.
func (s *analyticsService) SizeRanking(ctx context.Context) ([]UnitRank, error) {
	return s.ranking(ctx, func(sale model.Sale, product model.Product) string {
		if sale.Size != "" {
			return sale.Size
		}
		return product.FirstSize()
	})
}

func (s *analyticsService) ranking(ctx context.Context, labelFn func(model.Sale, model.Product) string) ([]UnitRank, error) {
	var ranks []UnitRank
	if err := s.db.View(ctx, func(st *memdb.State) error {
		products := productIndex(st)
		units := make(map[string]int)
		for _, sale := range st.Sales {
			product, ok := products[sale.ProductID]
			if !ok {
				continue
			}
			units[labelFn(sale, product)] += sale.Qty
		}

		ranks = make([]UnitRank, 0, len(units))
		for label, n := range units {
			ranks = append(ranks, UnitRank{Label: label, Units: n})
		}
		sort.Slice(ranks, func(i, j int) bool {
			if ranks[i].Units != ranks[j].Units {
				return ranks[i].Units > ranks[j].Units
			}
			return ranks[i].Label < ranks[j].Label
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view state: %w", err)
	}

	return ranks, nil
}

func (s *analyticsService) LowStock(ctx context.Context) (LowStockReport, error) {
	report := LowStockReport{Threshold: s.lowStockThreshold}
	if err := s.db.View(ctx, func(st *memdb.State) error {
		for _, p := range st.Products {
			if p.Stock <= s.lowStockThreshold {
				report.Products = append(report.Products, p)
			}
		}
		return nil
	}); err != nil {
		return LowStockReport{}, fmt.Errorf("view state: %w", err)
	}

	return report, nil
}

func (s *analyticsService) CustomerInsights(ctx context.Context) ([]CustomerInsight, error) {
	var insights []CustomerInsight
	if err := s.db.View(ctx, func(st *memdb.State) error {
		products := productIndex(st)

		insights = make([]CustomerInsight, 0, len(st.Customers))
		for _, customer := range st.Customers {
			var custSales []model.Sale
			for _, sale := range st.Sales {
				if sale.CustomerID == customer.ID {
					custSales = append(custSales, sale)
				}
			}
			sort.SliceStable(custSales, func(i, j int) bool {
				return custSales[i].Date.After(custSales[j].Date)
			})

			insight := CustomerInsight{Customer: customer}
			categoryUnits := make(map[string]int)
			for _, sale := range custSales {
				insight.TotalSpent += sale.Total
				if product, ok := products[sale.ProductID]; ok {
					categoryUnits[product.Category] += sale.Qty
				}
			}
			insight.TotalSpent = round2(insight.TotalSpent)
			insight.FavoriteCategory = favoriteCategory(categoryUnits)

			if len(custSales) > 0 {
				last := custSales[0]
				insight.LastPurchase = &last

				recent := custSales
				if len(recent) > recentPurchaseLimit {
					recent = recent[:recentPurchaseLimit]
				}
				insight.RecentPurchases = recent
			}

			insights = append(insights, insight)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view state: %w", err)
	}

	return insights, nil
}

func (s *analyticsService) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	if err := s.db.View(ctx, func(st *memdb.State) error {
		for _, sale := range st.Sales {
			summary.TotalRevenue += sale.Total
			summary.TotalUnits += sale.Qty
		}
		summary.TotalRevenue = round2(summary.TotalRevenue)
		for _, p := range st.Products {
			summary.TotalStock += p.Stock
		}
		return nil
	}); err != nil {
		return Summary{}, fmt.Errorf("view state: %w", err)
	}

	return summary, nil
}

// dayOf truncates t to its calendar day in t's own location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func favoriteCategory(units map[string]int) string {
	var favorite string
	var best int
	for category, n := range units {
		if n > best || (n == best && (favorite == "" || category < favorite)) {
			favorite = category
			best = n
		}
	}
	return favorite
}

func productIndex(st *memdb.State) map[string]model.Product {
	products := make(map[string]model.Product, len(st.Products))
	for _, p := range st.Products {
		products[p.ID] = p
	}
	return products
}
