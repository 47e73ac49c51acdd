package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is one recorded sale event. Sales are created by the sale service and
// never mutated or deleted afterward.
type Sale struct {
	ID         uuid.UUID `json:"id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Qty        int       `json:"qty"`
	// Size is the size variant sold, empty when the sale did not record one.
	Size     string  `json:"size,omitempty"`
	Discount float64 `json:"discount"`
	// Total is the monetary amount after discount, rounded to 2 decimals.
	Total float64   `json:"total"`
	Date  time.Time `json:"date"`
}
