package entity

// DashboardStats is the aggregate snapshot served by /stats/dashboard.
// All aggregation happens server-side; the console only formats it.
type DashboardStats struct {
	TotalProducts  int     `json:"totalProducts"`
	ActiveProducts int     `json:"activeProducts"`
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalUsers     int     `json:"totalUsers"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

// SalesPoint is one bucket of the sales-over-time series.
type SalesPoint struct {
	Period  string  `json:"period"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProduct is one row of the best-sellers breakdown.
type TopProduct struct {
	ProductRef string  `json:"productId"`
	Name       string  `json:"name"`
	UnitsSold  int     `json:"unitsSold"`
	Revenue    float64 `json:"revenue"`
}
