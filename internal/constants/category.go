package constants

// Category is the fixed set of menu sections the kitchen prepares for.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBreakfast
	CategoryLunch
	CategoryDinner
	CategorySnacks
	CategorySweets
)

func (c Category) String() string {
	switch c {
	case CategoryBreakfast:
		return "Breakfast"
	case CategoryLunch:
		return "Lunch"
	case CategoryDinner:
		return "Dinner"
	case CategorySnacks:
		return "Snacks"
	case CategorySweets:
		return "Sweets"
	default:
		return "Unknown"
	}
}

var categoryMap = map[string]Category{
	"Breakfast": CategoryBreakfast,
	"Lunch":     CategoryLunch,
	"Dinner":    CategoryDinner,
	"Snacks":    CategorySnacks,
	"Sweets":    CategorySweets,
}

func ParseCategory(s string) Category {
	if c, ok := categoryMap[s]; ok {
		return c
	}
	return CategoryUnknown
}

// Categories lists every valid category in menu display order.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks, CategorySweets}
}
