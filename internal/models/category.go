package models

// Category is one fixed classification bucket for expenses, with the
// display metadata the presentation layer needs.
type Category struct {
	// ID is the stable identifier stored on expenses and budget entries.
	ID string

	// Label is the human-readable name.
	Label string

	// Color is the hex color used when rendering this category.
	Color string
}

// FallbackCategoryID is the category an unknown id resolves to at display
// time. The stored id on the expense is never rewritten.
const FallbackCategoryID = "other"

// Categories is the static category table. The order here is the order
// categories are presented in.
var Categories = []Category{
	{ID: "food", Label: "Food & Dining", Color: "#ef4444"},
	{ID: "transport", Label: "Transport", Color: "#3b82f6"},
	{ID: "shopping", Label: "Shopping", Color: "#a855f7"},
	{ID: "entertainment", Label: "Entertainment", Color: "#f59e0b"},
	{ID: "bills", Label: "Bills & Utilities", Color: "#10b981"},
	{ID: "health", Label: "Health", Color: "#ec4899"},
	{ID: "other", Label: "Other", Color: "#6b7280"},
}

// CategoryByID looks up a category table entry. Unknown ids fall back to
// the "other" category rather than erroring.
func CategoryByID(id string) Category {
	fallback := Categories[0]
	for _, c := range Categories {
		if c.ID == id {
			return c
		}
		if c.ID == FallbackCategoryID {
			fallback = c
		}
	}
	return fallback
}
