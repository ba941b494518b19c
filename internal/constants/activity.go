package constants

// Activity actions recorded in the audit trail.
const (
	ActivityStockUpdated    = "STOCK_UPDATED"
	ActivityItemToggled     = "ITEM_TOGGLED"
	ActivityItemAdded       = "ITEM_ADDED"
	ActivityItemDeleted     = "ITEM_DELETED"
	ActivityMenuRestored    = "MENU_RESTORED"
	ActivityBillCreated     = "BILL_CREATED"
	ActivityBillCancelled   = "BILL_CANCELLED"
	ActivitySettingsUpdated = "SETTINGS_UPDATED"
)
