package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vigneshdvlopers/monthly-expense/internal/idgen"
	"github.com/vigneshdvlopers/monthly-expense/internal/models"
	"github.com/vigneshdvlopers/monthly-expense/internal/storage"
)

// ExpenseService owns the expense collection. The collection lives in
// memory, ordered most-recent-first by insertion, and every accepted
// mutation writes the full snapshot through to the store before
// returning. Not safe for concurrent use; the tracker has a single
// logical actor.
type ExpenseService struct {
	store    storage.Store
	expenses []models.Expense

	// Injected capabilities so tests can pin time and ids.
	now   func() time.Time
	newID func() string
}

// NewExpenseService loads the stored expense collection and returns a
// service owning it.
func NewExpenseService(ctx context.Context, store storage.Store) (*ExpenseService, error) {
	expenses, err := store.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	slog.Info("Expense collection loaded", "count", len(expenses))

	return &ExpenseService{
		store:    store,
		expenses: expenses,
		now:      time.Now,
		newID:    idgen.New,
	}, nil
}

// Expenses returns a copy of the current collection, most recent first.
func (s *ExpenseService) Expenses() []models.Expense {
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Get returns the expense with the given id, when one exists.
func (s *ExpenseService) Get(id string) (models.Expense, bool) {
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// Add validates and records a new expense. On success the record gets a
// fresh id and creation timestamp, is prepended to the collection, and
// the full snapshot is written through. A validation failure returns the
// sentinel error and mutates nothing.
func (s *ExpenseService) Add(ctx context.Context, amount float64, category, description, date string) (*models.Expense, error) {
	expense := models.Expense{
		ID:          s.newID(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   s.now().Unix(),
	}

	if err := expense.Validate(); err != nil {
		slog.Debug("Add rejected", "error", err)
		return nil, err
	}

	updated := append([]models.Expense{expense}, s.expenses...)
	if err := s.store.SaveExpenses(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist expenses: %w", err)
	}
	s.expenses = updated

	slog.Info("Expense added",
		"id", expense.ID,
		"amount", expense.Amount,
		"category", expense.Category,
	)
	return &expense, nil
}

// Update replaces the amount, category, description, and date of the
// expense with the given id. Id and creation timestamp never change.
// An unknown id is a no-op; the same validation as Add applies before
// the write is accepted.
func (s *ExpenseService) Update(ctx context.Context, id string, amount float64, category, description, date string) error {
	idx := -1
	for i, e := range s.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("Update skipped, no such expense", "id", id)
		return nil
	}

	updated := s.expenses[idx]
	updated.Amount = amount
	updated.Category = category
	updated.Description = description
	updated.Date = date

	if err := updated.Validate(); err != nil {
		slog.Debug("Update rejected", "id", id, "error", err)
		return err
	}

	prev := s.expenses[idx]
	s.expenses[idx] = updated
	if err := s.store.SaveExpenses(ctx, s.expenses); err != nil {
		s.expenses[idx] = prev
		return fmt.Errorf("failed to persist expenses: %w", err)
	}

	slog.Info("Expense updated", "id", id)
	return nil
}

// Remove deletes the expense with the given id. Removing an id that does
// not exist is a no-op, so Remove is idempotent.
func (s *ExpenseService) Remove(ctx context.Context, id string) error {
	idx := -1
	for i, e := range s.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := append([]models.Expense{}, s.expenses[:idx]...)
	updated = append(updated, s.expenses[idx+1:]...)
	if err := s.store.SaveExpenses(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist expenses: %w", err)
	}
	s.expenses = updated

	slog.Info("Expense removed", "id", id)
	return nil
}
