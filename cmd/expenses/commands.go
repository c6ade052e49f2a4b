package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vigneshdvlopers/monthly-expense/internal/calculator"
	"github.com/vigneshdvlopers/monthly-expense/internal/config"
	"github.com/vigneshdvlopers/monthly-expense/internal/export"
	"github.com/vigneshdvlopers/monthly-expense/internal/models"
	"github.com/vigneshdvlopers/monthly-expense/internal/service"
)

// app wires the stores and configuration behind the subcommands. This is
// the presentation layer: raw flag strings are converted and normalized
// here before they reach the services, and user-facing output goes to out.
type app struct {
	cfg      *config.Config
	expenses *service.ExpenseService
	budget   *service.BudgetService
	out      io.Writer
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	amount := fs.String("amount", "", "amount spent")
	category := fs.String("category", "", "category id")
	desc := fs.String("desc", "", "description")
	date := fs.String("date", "", "date (YYYY-MM-DD, defaults to today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}

	expense, err := a.expenses.Add(ctx, value, *category, *desc, normalizeDate(*date, time.Now()))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s: %s %s (%s)\n",
		expense.ID, formatAmount(expense.Amount),
		expense.Description, models.CategoryByID(expense.Category).Label)
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.String("id", "", "expense id")
	amount := fs.String("amount", "", "amount spent")
	category := fs.String("category", "", "category id")
	desc := fs.String("desc", "", "description")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	// The store treats an unknown id as a no-op, so check up front to
	// avoid telling the user a record changed when nothing did.
	if _, ok := a.expenses.Get(*id); !ok {
		fmt.Fprintf(a.out, "No such expense: %s\n", *id)
		return nil
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return err
	}

	if err := a.expenses.Update(ctx, *id, value, *category, *desc, normalizeDate(*date, time.Now())); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", *id)
	return nil
}

func (a *app) remove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	id := fs.String("id", "", "expense id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if _, ok := a.expenses.Get(*id); !ok {
		fmt.Fprintf(a.out, "No such expense: %s\n", *id)
		return nil
	}

	if err := a.expenses.Remove(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %s\n", *id)
	return nil
}

func (a *app) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	search := fs.String("search", "", "free-text search term")
	category := fs.String("category", calculator.AllCategories, "category id, or all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	expenses := calculator.Filter(a.expenses.Expenses(), *search, *category)
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return nil
	}

	for _, e := range expenses {
		fmt.Fprintf(a.out, "%-36s  %10s  %-18s  %s  %s\n",
			e.ID, formatAmount(e.Amount),
			models.CategoryByID(e.Category).Label, e.Date, e.Description)
	}
	return nil
}

func (a *app) summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	month := calculator.MonthExpenses(a.expenses.Expenses(), now)
	budget := a.budget.Budget()

	spent := calculator.TotalSpent(month)
	fmt.Fprintf(a.out, "Summary for %s\n\n", now.Format("January 2006"))
	fmt.Fprintf(a.out, "  Spent:     %s of %s (%.1f%%)\n",
		formatAmount(spent), formatAmount(budget.Total),
		calculator.BudgetUsedPercent(spent, budget.Total))
	fmt.Fprintf(a.out, "  Remaining: %s\n", formatAmount(calculator.Remaining(budget.Total, spent)))
	fmt.Fprintf(a.out, "  Days left: %d\n\n", calculator.DaysLeft(now))

	// Spend stored under ids missing from the category table is folded
	// into the fallback category for display; stored ids stay untouched.
	totals := make(map[string]float64)
	for id, amount := range calculator.CategoryTotals(month) {
		totals[models.CategoryByID(id).ID] += amount
	}

	for _, c := range models.Categories {
		catSpent := totals[c.ID]
		limit, hasLimit := budget.Categories[c.ID]
		if catSpent == 0 && !hasLimit {
			continue
		}
		if hasLimit {
			fmt.Fprintf(a.out, "  %-18s %10s / %s (%.0f%%, %s left)\n",
				c.Label, formatAmount(catSpent), formatAmount(limit),
				calculator.CategoryUsedPercent(catSpent, limit),
				formatAmount(calculator.CategoryRemaining(limit, catSpent)))
		} else {
			fmt.Fprintf(a.out, "  %-18s %10s (no limit)\n", c.Label, formatAmount(catSpent))
		}
	}
	return nil
}

func (a *app) setBudget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("budget", flag.ContinueOnError)
	total := fs.String("total", "", "overall monthly limit")
	category := fs.String("category", "", "category id")
	limit := fs.String("limit", "", "category monthly limit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *total == "" && *category == "" {
		budget := a.budget.Budget()
		fmt.Fprintf(a.out, "Total: %s\n", formatAmount(budget.Total))
		for _, c := range models.Categories {
			if l, ok := budget.Categories[c.ID]; ok {
				fmt.Fprintf(a.out, "  %-18s %s\n", c.Label, formatAmount(l))
			}
		}
		return nil
	}

	if *total != "" {
		value, err := parseAmount(*total)
		if err != nil {
			return err
		}
		if err := a.budget.SetTotal(ctx, value); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Budget total set to %s\n", formatAmount(a.budget.Budget().Total))
	}

	if *category != "" {
		if *limit == "" {
			return fmt.Errorf("-limit is required with -category")
		}
		value, err := parseAmount(*limit)
		if err != nil {
			return err
		}
		if err := a.budget.SetCategoryLimit(ctx, *category, value); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Limit for %s set to %s\n",
			models.CategoryByID(*category).Label, formatAmount(value))
	}
	return nil
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "csv", "export format: csv or xlsx")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var name string
	switch *format {
	case "csv":
		name = export.CSVFileName
	case "xlsx":
		name = export.XLSXFileName
	default:
		return fmt.Errorf("unknown format %q: must be csv or xlsx", *format)
	}

	path := filepath.Join(a.cfg.ExportDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	// Exports cover the full collection, not the current filter.
	expenses := a.expenses.Expenses()
	if *format == "csv" {
		err = export.WriteCSV(f, expenses)
	} else {
		err = export.WriteXLSX(f, expenses)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported %d expenses to %s\n", len(expenses), path)
	return nil
}

// parseAmount converts raw form input into a number. The services apply
// the real validation; this only deals with strings that are not numbers
// at all.
func parseAmount(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, models.ErrInvalidAmount
	}
	return value, nil
}

// normalizeDate defaults an empty date to today. Anything else is passed
// through trimmed; the month filter simply skips dates it cannot parse.
func normalizeDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format("2006-01-02")
	}
	return raw
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
