// Package calculator derives monthly summaries and budget health from the
// expense collection. Everything here is a pure function over its inputs:
// no mutation, no side effects, recomputed on every call. The collections
// involved are small enough that caching would be pointless.
package calculator

import (
	"strings"
	"time"

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
)

// AllCategories is the sentinel category filter meaning "do not filter".
const AllCategories = "all"

// MonthExpenses returns the expenses whose date falls in the same calendar
// year and month as now. Dates parse as UTC midnight while now is usually
// local time, so a day on a month boundary can land in the neighboring
// month for far-from-UTC timezones; this matches the historical behavior
// and is left as-is. Expenses with unparseable dates are excluded.
func MonthExpenses(expenses []models.Expense, now time.Time) []models.Expense {
	var subset []models.Expense
	for _, e := range expenses {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if d.Year() == now.Year() && d.Month() == now.Month() {
			subset = append(subset, e)
		}
	}
	return subset
}

// Filter narrows expenses by a free-text search term and a category filter.
// The search term matches case-insensitively against the description or the
// category id; the category filter is an exact match unless it is the
// AllCategories sentinel. Both predicates are ANDed. Input order (most
// recent first) is preserved.
func Filter(expenses []models.Expense, search, category string) []models.Expense {
	search = strings.ToLower(strings.TrimSpace(search))

	var result []models.Expense
	for _, e := range expenses {
		if search != "" {
			desc := strings.ToLower(e.Description)
			cat := strings.ToLower(e.Category)
			if !strings.Contains(desc, search) && !strings.Contains(cat, search) {
				continue
			}
		}
		if category != "" && category != AllCategories && e.Category != category {
			continue
		}
		result = append(result, e)
	}
	return result
}

// TotalSpent sums the amounts of the given expenses. An empty slice sums
// to zero.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CategoryTotals sums amounts grouped by category id. Categories with no
// spend are absent from the map; callers must default missing keys to 0.
func CategoryTotals(expenses []models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// BudgetUsedPercent reports spending against the overall budget as a
// percentage. A zero (or negative) budget yields 0 rather than dividing
// by zero; this is a guard, not a true percentage.
func BudgetUsedPercent(spent, budgetTotal float64) float64 {
	if budgetTotal <= 0 {
		return 0
	}
	return spent / budgetTotal * 100
}

// Remaining is the overall budget left this month, floored at zero.
func Remaining(budgetTotal, spent float64) float64 {
	if r := budgetTotal - spent; r > 0 {
		return r
	}
	return 0
}

// CategoryUsedPercent reports spending against a single category limit,
// capped at 100. A zero or unset limit yields 0, same guard as
// BudgetUsedPercent.
func CategoryUsedPercent(spent, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	pct := spent / limit * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// CategoryRemaining is the category budget left, floored at zero.
func CategoryRemaining(limit, spent float64) float64 {
	if r := limit - spent; r > 0 {
		return r
	}
	return 0
}

// DaysLeft estimates the days remaining in the month as 31 minus the day
// of the month. Off by up to three days for shorter months; kept for
// compatibility with the historical display.
func DaysLeft(now time.Time) int {
	if d := 31 - now.Day(); d > 0 {
		return d
	}
	return 0
}
