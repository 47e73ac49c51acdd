package config

// Store configures the in-memory session store.
type Store struct {
	// LowStockThreshold is the stock quantity at or below which a product
	// is flagged for restock attention.
	LowStockThreshold int `env:"STORE_LOW_STOCK_THRESHOLD" envDefault:"8"`

	// Seed loads the demo catalog, customers and backdated sales at startup.
	Seed bool `env:"STORE_SEED" envDefault:"true"`
}
