// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/vigneshdvlopers/monthly-expense/internal/models"
	"github.com/vigneshdvlopers/monthly-expense/internal/storage"
)

// Snapshot keys. Each entity lives under its own key and is written
// independently of the other.
const (
	keyExpenses = "expenses"
	keyBudget   = "budget"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using a single snapshots table in
// SQLite. Each entity is serialized as one JSON blob under its key; there
// is no per-record schema and no snapshot versioning. A snapshot written
// by an incompatible format simply fails to parse and reads as absent.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and sets up the schema automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := setupSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadExpenses reads the expense snapshot. A missing or corrupt snapshot
// yields the empty collection: corruption is logged, never raised, so a
// bad blob can't brick the whole tracker.
func (s *SQLiteStore) LoadExpenses(ctx context.Context) ([]models.Expense, error) {
	blob, err := s.read(ctx, keyExpenses)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []models.Expense{}, nil
	}

	var expenses []models.Expense
	if err := json.Unmarshal(blob, &expenses); err != nil {
		slog.Warn("Expense snapshot failed to parse, starting from empty",
			"key", keyExpenses,
			"error", err,
		)
		return []models.Expense{}, nil
	}
	return expenses, nil
}

// SaveExpenses overwrites the expense snapshot with the full collection.
func (s *SQLiteStore) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	blob, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to serialize expenses: %w", err)
	}
	return s.write(ctx, keyExpenses, blob)
}

// LoadBudget reads the budget snapshot, falling back to the default
// budget when the snapshot is missing or corrupt.
func (s *SQLiteStore) LoadBudget(ctx context.Context) (models.Budget, error) {
	blob, err := s.read(ctx, keyBudget)
	if err != nil {
		return models.Budget{}, err
	}
	if blob == nil {
		return models.DefaultBudget(), nil
	}

	var budget models.Budget
	if err := json.Unmarshal(blob, &budget); err != nil {
		slog.Warn("Budget snapshot failed to parse, using defaults",
			"key", keyBudget,
			"error", err,
		)
		return models.DefaultBudget(), nil
	}
	if budget.Categories == nil {
		budget.Categories = map[string]float64{}
	}
	return budget, nil
}

// SaveBudget overwrites the budget snapshot with the full value.
func (s *SQLiteStore) SaveBudget(ctx context.Context, budget models.Budget) error {
	blob, err := json.Marshal(budget)
	if err != nil {
		return fmt.Errorf("failed to serialize budget: %w", err)
	}
	return s.write(ctx, keyBudget, blob)
}

// read returns the blob stored under key, or nil when the key is absent.
func (s *SQLiteStore) read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM snapshots WHERE key = ?",
		key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return value, nil
}

// write upserts the blob under key, leaving every other key untouched.
func (s *SQLiteStore) write(ctx context.Context, key string, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}
