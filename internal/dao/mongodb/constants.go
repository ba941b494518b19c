package mongodb

const (
	CollectionMenuItems     = "menu_items"
	CollectionMenuTemplates = "menu_templates"
	CollectionOrders        = "orders"
	CollectionCounters      = "counters"
	CollectionSettings      = "settings"
	CollectionActivityLogs  = "activity_logs"
)

// SettingsDocID is the id of the single restaurant configuration document.
const SettingsDocID = "config"
