package model

// Product is one catalog entry. Code is the opaque scan/lookup key printed
// on the shelf label (barcode or QR payload), unique within a catalog.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	Category          string  `json:"category"`
	Code              string  `json:"code"`
	Description       string  `json:"description,omitempty"`
	LowStockThreshold int     `json:"lowStockThreshold,omitempty"`

	// Derived flags. IsLowStock follows Quantity; the expiry flags are
	// computed server-side and passed through unchanged.
	IsLowStock     bool `json:"isLowStock"`
	IsExpired      bool `json:"isExpired"`
	IsExpiringSoon bool `json:"isExpiringSoon"`
}

// RecomputeLowStock refreshes the low-stock flag. Must be called after every
// quantity change.
func (p *Product) RecomputeLowStock() {
	p.IsLowStock = p.Quantity <= p.LowStockThreshold
}

// Value returns the stock value of this product line.
func (p Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}
