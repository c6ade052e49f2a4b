package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
	"github.com/vigneshdvlopers/monthly-expense/internal/storage"
)

// memStore is an in-memory storage.Store used to observe write-through
// behavior without a real database.
type memStore struct {
	expenses []models.Expense
	budget   models.Budget

	expenseSaves int
	budgetSaves  int
	failSaves    bool
}

var _ storage.Store = (*memStore)(nil)

var errSaveFailed = errors.New("save failed")

func newMemStore() *memStore {
	return &memStore{budget: models.DefaultBudget()}
}

func (m *memStore) LoadExpenses(ctx context.Context) ([]models.Expense, error) {
	return append([]models.Expense{}, m.expenses...), nil
}

func (m *memStore) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	if m.failSaves {
		return errSaveFailed
	}
	m.expenses = append([]models.Expense{}, expenses...)
	m.expenseSaves++
	return nil
}

func (m *memStore) LoadBudget(ctx context.Context) (models.Budget, error) {
	return m.budget.Clone(), nil
}

func (m *memStore) SaveBudget(ctx context.Context, budget models.Budget) error {
	if m.failSaves {
		return errSaveFailed
	}
	m.budget = budget.Clone()
	m.budgetSaves++
	return nil
}

func (m *memStore) Close() error { return nil }

func newTestExpenseService(t *testing.T, store *memStore) *ExpenseService {
	t.Helper()

	svc, err := NewExpenseService(context.Background(), store)
	if err != nil {
		t.Fatalf("NewExpenseService failed: %v", err)
	}

	// Pin the injected capabilities for deterministic assertions.
	fixed := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	seq := 0
	svc.newID = func() string {
		seq++
		return []string{"id-1", "id-2", "id-3", "id-4"}[seq-1]
	}
	return svc
}

func TestExpenseServiceAdd(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	first, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID != "id-1" {
		t.Errorf("ID = %s, want id-1", first.ID)
	}
	if first.CreatedAt == 0 {
		t.Error("Expected CreatedAt to be set")
	}

	second, err := svc.Add(ctx, 30, "bills", "Phone bill", "2025-03-16")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Most-recent-first by insertion, independent of Date.
	expenses := svc.Expenses()
	if len(expenses) != 2 {
		t.Fatalf("Collection size = %d, want 2", len(expenses))
	}
	if expenses[0].ID != second.ID || expenses[1].ID != first.ID {
		t.Errorf("Order = [%s, %s], want [%s, %s]", expenses[0].ID, expenses[1].ID, second.ID, first.ID)
	}

	// Each accepted mutation writes the full snapshot through.
	if store.expenseSaves != 2 {
		t.Errorf("Snapshot writes = %d, want 2", store.expenseSaves)
	}
	if len(store.expenses) != 2 {
		t.Errorf("Persisted collection size = %d, want 2", len(store.expenses))
	}
}

func TestExpenseServiceAddRejections(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		category    string
		description string
		wantErr     error
	}{
		{"zero amount", 0, "food", "Lunch", models.ErrInvalidAmount},
		{"negative amount", -3, "food", "Lunch", models.ErrInvalidAmount},
		{"NaN amount", math.NaN(), "food", "Lunch", models.ErrInvalidAmount},
		{"infinite amount", math.Inf(1), "food", "Lunch", models.ErrInvalidAmount},
		{"short description", 10, "food", " x ", models.ErrShortDescription},
		{"empty category", 10, "", "Lunch", models.ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			svc := newTestExpenseService(t, store)

			_, err := svc.Add(context.Background(), tt.amount, tt.category, tt.description, "2025-03-15")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add error = %v, want %v", err, tt.wantErr)
			}
			if len(svc.Expenses()) != 0 {
				t.Error("Rejected add must leave the collection unchanged")
			}
			if store.expenseSaves != 0 {
				t.Error("Rejected add must not write a snapshot")
			}
		})
	}
}

func TestExpenseServiceUpdate(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	added, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Update(ctx, added.ID, 14, "entertainment", "Cinema", "2025-03-20"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got := svc.Expenses()[0]
	if got.Amount != 14 || got.Category != "entertainment" || got.Description != "Cinema" || got.Date != "2025-03-20" {
		t.Errorf("Updated expense = %+v", got)
	}
	// Immutable fields survive the full-field replacement.
	if got.ID != added.ID || got.CreatedAt != added.CreatedAt {
		t.Error("Update must not change ID or CreatedAt")
	}

	if store.expenseSaves != 2 {
		t.Errorf("Snapshot writes = %d, want 2", store.expenseSaves)
	}
}

func TestExpenseServiceUpdateRejectsInvalidFields(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	added, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Update(ctx, added.ID, -1, "food", "Lunch", "2025-03-15"); !errors.Is(err, models.ErrInvalidAmount) {
		t.Errorf("Update error = %v, want %v", err, models.ErrInvalidAmount)
	}

	got := svc.Expenses()[0]
	if got.Amount != 12.5 {
		t.Errorf("Amount = %v after rejected update, want 12.5", got.Amount)
	}
}

func TestExpenseServiceGet(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	added, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, ok := svc.Get(added.ID)
	if !ok {
		t.Fatalf("Get(%s) reported not found", added.ID)
	}
	if got != *added {
		t.Errorf("Get = %+v, want %+v", got, *added)
	}

	if _, ok := svc.Get("no-such-id"); ok {
		t.Error("Get(unknown) reported found")
	}
}

func TestExpenseServiceUpdateUnknownIDIsNoop(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	saves := store.expenseSaves

	if err := svc.Update(ctx, "no-such-id", 99, "bills", "Rent", "2025-03-01"); err != nil {
		t.Fatalf("Update with unknown id should be a silent no-op, got %v", err)
	}
	if store.expenseSaves != saves {
		t.Error("No-op update must not write a snapshot")
	}
}

func TestExpenseServiceRemoveIdempotent(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	ctx := context.Background()

	added, err := svc.Add(ctx, 12.5, "food", "Lunch", "2025-03-15")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Remove(ctx, added.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(svc.Expenses()) != 0 {
		t.Fatal("Expected empty collection after remove")
	}
	saves := store.expenseSaves

	// Second remove of the same id is a no-op.
	if err := svc.Remove(ctx, added.ID); err != nil {
		t.Fatalf("Second remove returned error: %v", err)
	}
	if store.expenseSaves != saves {
		t.Error("No-op remove must not write a snapshot")
	}
}

func TestExpenseServiceAddKeepsStateOnSaveFailure(t *testing.T) {
	store := newMemStore()
	svc := newTestExpenseService(t, store)
	store.failSaves = true

	if _, err := svc.Add(context.Background(), 12.5, "food", "Lunch", "2025-03-15"); !errors.Is(err, errSaveFailed) {
		t.Fatalf("Add error = %v, want wrapped save failure", err)
	}
	if len(svc.Expenses()) != 0 {
		t.Error("In-memory collection must not change when the snapshot write fails")
	}
}
