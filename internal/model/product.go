package model

// Product is a catalog entry. Only Stock mutates after creation, and only
// through sale recording; it never goes negative.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
}

// FirstSize returns the product's first listed size, used as the fallback
// size attribution when a sale did not record one.
func (p Product) FirstSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// HasSize reports whether size is one of the product's listed sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
