package model

import "time"

// SalesPoint is one bucket of the sales series.
type SalesPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TopProduct ranks a product by units moved over the queried period.
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

// InventoryValue totals the catalog at current prices.
type InventoryValue struct {
	TotalValue float64 `json:"totalValue"`
	TotalItems int     `json:"totalItems"`
}

// StockMovement is one bucket of inbound/outbound stock changes.
type StockMovement struct {
	Date string `json:"date"`
	In   int    `json:"in"`
	Out  int    `json:"out"`
}

// ActivityLog is one audit entry for a stock or user action.
type ActivityLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ProductID string    `json:"productId,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
