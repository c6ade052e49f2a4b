package models

// DefaultBudgetTotal is the overall monthly limit a fresh install starts with.
const DefaultBudgetTotal = 1000

// Budget holds the user's monthly spending limits.
type Budget struct {
	// Total is the overall monthly limit. Never negative.
	Total float64 `json:"total"`

	// Categories maps a category id to its monthly limit. Entries are
	// optional: a missing key means "no limit set" for that category,
	// which is rendered differently from an explicit zero limit.
	Categories map[string]float64 `json:"categories"`
}

// DefaultBudget returns the budget used on first run, before the user has
// set any limits.
func DefaultBudget() Budget {
	return Budget{
		Total:      DefaultBudgetTotal,
		Categories: map[string]float64{},
	}
}

// Clone returns a deep copy so callers can hand out budgets without
// sharing the category map.
func (b Budget) Clone() Budget {
	categories := make(map[string]float64, len(b.Categories))
	for id, limit := range b.Categories {
		categories[id] = limit
	}
	return Budget{Total: b.Total, Categories: categories}
}
