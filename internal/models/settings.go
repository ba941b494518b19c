package models

// Settings is the single restaurant configuration document. The billing
// workflow takes a snapshot of it per call instead of reading ambient state.
type Settings struct {
	RestaurantName    string  `bson:"restaurant_name" json:"restaurantName"`
	GSTPercentage     float64 `bson:"gst_percentage" json:"gstPercentage"`
	Currency          string  `bson:"currency" json:"currency"`
	LowStockThreshold int64   `bson:"low_stock_threshold" json:"lowStockThreshold"`
	BillPrefix        string  `bson:"bill_prefix" json:"billPrefix"`
	AutoDisableStock  bool    `bson:"auto_disable_stock" json:"autoDisableStock"`
}

// DefaultSettings returns the configuration seeded on first run.
func DefaultSettings() *Settings {
	return &Settings{
		RestaurantName:    "Subramaniya Mess",
		GSTPercentage:     5,
		Currency:          "₹",
		LowStockThreshold: 10,
		BillPrefix:        "BILL",
		AutoDisableStock:  true,
	}
}
