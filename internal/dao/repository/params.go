package repository

// StockWrite is one pre-validated ledger mutation. The caller computes
// NewSold from state it read inside the same transaction; ExpectedSold
// guards the write so a concurrent mutation surfaces instead of being
// silently overwritten.
type StockWrite struct {
	ItemID       int64
	ExpectedSold int64
	NewSold      int64
	// Disable clears the available flag in the same write. Set only by the
	// billing workflow when remaining stock hits zero and auto-disable is on.
	Disable bool
}

// MenuItemUpdate carries the editable fields of a menu item. PreparedQuantity
// overwrites the current batch size; SoldQuantity is never edited directly.
type MenuItemUpdate struct {
	Name             string
	Category         string
	Price            float64
	PreparedQuantity int64
	PreparedDate     string
	Available        bool
}

// ListBillsParams filters and paginates the order history.
type ListBillsParams struct {
	Status string // empty means any status
	Offset int
	Limit  int
}

// ListActivityParams filters and paginates the activity trail.
type ListActivityParams struct {
	Action string // empty means any action
	Offset int
	Limit  int
}
