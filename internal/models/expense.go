package models

import (
	"errors"
	"math"
	"strings"
)

// Validation errors returned by Expense.Validate. The stores reject the
// mutation and leave their state untouched when any of these occur; the
// presentation layer is expected to turn them into form feedback.
var (
	ErrInvalidAmount    = errors.New("amount must be a positive finite number")
	ErrShortDescription = errors.New("description must be at least 2 characters")
	ErrEmptyCategory    = errors.New("category is required")
)

// Expense represents one recorded spending transaction.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Assigned once at creation and never changed.
	ID string `json:"id"`

	// Amount is the amount spent, in the user's (single) currency unit.
	Amount float64 `json:"amount"`

	// Category is the id of a category table entry. It is not enforced as
	// a foreign key: unknown values resolve to the fallback category at
	// display time while the stored value is preserved as-is.
	Category string `json:"category"`

	// Description is free text describing the purchase.
	Description string `json:"description"`

	// Date is the calendar date of the spend in YYYY-MM-DD form.
	// User-editable; it does not have to match the creation time.
	Date string `json:"date"`

	// CreatedAt is the Unix timestamp when the record was created.
	// Immutable, used only for insertion ordering.
	CreatedAt int64 `json:"createdAt"`
}

// Validate checks the invariants every stored expense must satisfy:
// a positive finite amount, a trimmed description of at least two
// characters, and a non-empty category id.
func (e Expense) Validate() error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(e.Description)) < 2 {
		return ErrShortDescription
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
