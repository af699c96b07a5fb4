package model

// DashboardMetrics is a read-only aggregate over the current product set.
// Recomputed on every fetch, never cached.
type DashboardMetrics struct {
	TotalProducts   int     `json:"totalProducts"`
	LowStock        int     `json:"lowStock"`
	TotalValue      float64 `json:"totalValue"`
	TodaysSales     int     `json:"todaysSales"`
	ExpiredProducts int     `json:"expiredProducts"`
	ExpiringSoon    int     `json:"expiringSoon"`
}
