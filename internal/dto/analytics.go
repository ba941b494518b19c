package dto

// Analytics responses are read-only projections over committed bills and the
// current stock ledger, so these carry exported fields straight to JSON.

// DashboardStats is the at-a-glance summary for the current day.
type DashboardStats struct {
	TodayRevenue  float64             `json:"todayRevenue"`
	TodayBills    int64               `json:"todayBills"`
	ItemsSold     int64               `json:"itemsSold"`
	AvgBillValue  float64             `json:"avgBillValue"`
	PaymentSplit  map[string]float64  `json:"paymentSplit"`
	RevenueByHour []*HourRevenuePoint `json:"revenueByHour"`
	LowStockCount int64               `json:"lowStockCount"`
}

// HourRevenuePoint is one hour's bucket of today's revenue.
type HourRevenuePoint struct {
	Hour   string  `json:"hour"` // "0:00" .. "23:00"
	Amount float64 `json:"amount"`
}

// DailyRevenuePoint is one day's bucket of the revenue trend.
type DailyRevenuePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Bills   int64   `json:"bills"`
}

// CategorySales aggregates sold quantity and revenue per menu category.
type CategorySales struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ItemSales aggregates sold quantity and revenue per item.
type ItemSales struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// WastageEntry reports unsold prepared stock for one item.
type WastageEntry struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Prepared int64   `json:"prepared"`
	Sold     int64   `json:"sold"`
	Wasted   int64   `json:"wasted"`
	Loss     float64 `json:"loss"`
}

// AnalyticsReport bundles everything the dashboard renders in one response.
type AnalyticsReport struct {
	Stats         *DashboardStats      `json:"stats"`
	DailyRevenue  []*DailyRevenuePoint `json:"dailyRevenue"`
	CategorySales []*CategorySales     `json:"categorySales"`
	TopItems      []*ItemSales         `json:"topItems"`
	Wastage       []*WastageEntry      `json:"wastage"`
}
