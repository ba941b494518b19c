package constants

// Sequence counter namespaces. One counter document exists per namespace.
const (
	CounterBills     = "bills"
	CounterMenuItems = "menu_items"
)
