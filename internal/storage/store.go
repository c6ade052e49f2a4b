// Package storage provides abstractions for persistent snapshot storage.
package storage

import (
	"context"

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
)

// Store persists the tracker's state as two independently keyed snapshots:
// the full expense collection and the budget. This abstraction allows
// swapping storage backends without changing the service layer, and lets
// tests substitute an in-memory store.
//
// Loads are forgiving: a missing or unparseable snapshot yields the
// entity's default value, not an error. Only infrastructure failures
// (the backing store itself being unusable) surface as errors.
type Store interface {
	// LoadExpenses returns the stored expense collection, or an empty
	// collection when no valid snapshot exists.
	LoadExpenses(ctx context.Context) ([]models.Expense, error)

	// SaveExpenses overwrites the expense snapshot with the full
	// collection. It never touches the budget snapshot.
	SaveExpenses(ctx context.Context, expenses []models.Expense) error

	// LoadBudget returns the stored budget, or the default budget when
	// no valid snapshot exists.
	LoadBudget(ctx context.Context) (models.Budget, error)

	// SaveBudget overwrites the budget snapshot with the full value.
	// It never touches the expense snapshot.
	SaveBudget(ctx context.Context, budget models.Budget) error

	// Close releases any resources held by the store.
	Close() error
}
