package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
	"github.com/vigneshdvlopers/monthly-expense/internal/storage"
)

// BudgetService owns the budget. Like the expense service it keeps the
// value in memory and writes the full snapshot through on every accepted
// mutation. The budget is never deleted, only replaced in place.
type BudgetService struct {
	store  storage.Store
	budget models.Budget
}

// NewBudgetService loads the stored budget (or the default on first run)
// and returns a service owning it.
func NewBudgetService(ctx context.Context, store storage.Store) (*BudgetService, error) {
	budget, err := store.LoadBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	if budget.Categories == nil {
		budget.Categories = map[string]float64{}
	}
	return &BudgetService{store: store, budget: budget}, nil
}

// Budget returns a copy of the current budget.
func (s *BudgetService) Budget() models.Budget {
	return s.budget.Clone()
}

// SetTotal sets the overall monthly limit. Negative input clamps to zero
// at write time; non-finite input is rejected and mutates nothing.
func (s *BudgetService) SetTotal(ctx context.Context, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		slog.Debug("SetTotal rejected", "value", value)
		return models.ErrInvalidAmount
	}
	if value < 0 {
		value = 0
	}

	updated := s.budget.Clone()
	updated.Total = value
	if err := s.store.SaveBudget(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist budget: %w", err)
	}
	s.budget = updated

	slog.Info("Budget total set", "total", value)
	return nil
}

// SetCategoryLimit sets the monthly limit for one category, leaving every
// other entry untouched. Only finite, non-negative values are accepted;
// a rejection leaves the prior limit (or its absence) unchanged.
func (s *BudgetService) SetCategoryLimit(ctx context.Context, categoryID string, value float64) error {
	if categoryID == "" {
		return models.ErrEmptyCategory
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		slog.Debug("SetCategoryLimit rejected", "category", categoryID, "value", value)
		return models.ErrInvalidAmount
	}

	updated := s.budget.Clone()
	updated.Categories[categoryID] = value
	if err := s.store.SaveBudget(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist budget: %w", err)
	}
	s.budget = updated

	slog.Info("Category limit set", "category", categoryID, "limit", value)
	return nil
}
