// Package seed supplies the demo session snapshot: a small jeans catalog,
// three customers and a handful of backdated sales so the analytics views
// have data at first render.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/haiminhng/retail-console/internal/model"
	"github.com/haiminhng/retail-console/internal/storage/memdb"
)

// Apply replaces the store contents with the seed snapshot. Sale dates are
// spread over the days before now.
func Apply(ctx context.Context, db memdb.DB, now time.Time) error {
	return db.Update(ctx, func(s *memdb.State) error {
		s.Products = Products()
		s.Customers = Customers()
		s.Sales = Sales(now)
		return nil
	})
}

func Products() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Slim Fit Indigo", Category: "Slim Fit", Sizes: []string{"28", "30", "32", "34", "36"}, Colors: []string{"Indigo", "Black"}, Price: 59.99, Stock: 18},
		{ID: "p2", Name: "Regular Fit Blue", Category: "Regular Fit", Sizes: []string{"30", "32", "34", "36", "38"}, Colors: []string{"Blue"}, Price: 49.99, Stock: 24},
		{ID: "p3", Name: "Skinny Jet Black", Category: "Skinny", Sizes: []string{"26", "28", "30", "32", "34"}, Colors: []string{"Black", "Grey"}, Price: 64.99, Stock: 7},
		{ID: "p4", Name: "Bootcut Classic", Category: "Bootcut", Sizes: []string{"30", "32", "34", "36"}, Colors: []string{"Dark Blue"}, Price: 69.99, Stock: 9},
		{ID: "p5", Name: "Relaxed Vintage", Category: "Regular Fit", Sizes: []string{"32", "34", "36", "38", "40"}, Colors: []string{"Light Blue"}, Price: 54.99, Stock: 12},
		{ID: "p6", Name: "Super Skinny Grey", Category: "Skinny", Sizes: []string{"28", "30", "32"}, Colors: []string{"Grey"}, Price: 62.5, Stock: 6},
	}
}

func Customers() []model.Customer {
	return []model.Customer{
		{ID: "c1", Name: "Ava Johnson", Email: "ava@example.com"},
		{ID: "c2", Name: "Liam Carter", Email: "liam@example.com"},
		{ID: "c3", Name: "Mia Patel", Email: "mia@example.com"},
	}
}

// Sales returns the seed ledger, newest first.
func Sales(now time.Time) []model.Sale {
	daysAgo := func(n int) time.Time {
		return now.Add(-time.Duration(n) * 24 * time.Hour)
	}

	return []model.Sale{
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p6", CustomerID: "c1", Qty: 1, Discount: 0, Total: 62.5, Date: daysAgo(1)},
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p2", CustomerID: "c1", Qty: 2, Discount: 0, Total: 99.98, Date: daysAgo(2)},
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p4", CustomerID: "c2", Qty: 1, Discount: 0, Total: 69.99, Date: daysAgo(3)},
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p3", CustomerID: "c3", Qty: 3, Discount: 5, Total: 185.22, Date: daysAgo(5)},
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p2", CustomerID: "c2", Qty: 1, Discount: 0, Total: 49.99, Date: daysAgo(7)},
		{ID: uuid.Must(uuid.NewV7()), ProductID: "p1", CustomerID: "c1", Qty: 2, Discount: 10, Total: 107.98, Date: daysAgo(8)},
	}
}
