// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - Expense: one recorded spending transaction
//   - Budget: the user's overall and per-category monthly limits
//   - Category: a fixed classification bucket with display metadata
//
// The tracker is single-user and client-only, so models carry no owner or
// account references.
//
// # Design Principles
//
//  1. **Snapshot persistence**: each entity is serialized whole; there is no
//     per-record storage schema to migrate.
//  2. **Plain values**: models are value types with JSON tags matching the
//     persisted snapshot layout exactly.
//  3. **Soft references**: expenses reference categories by id string; unknown
//     ids resolve to a fallback at display time instead of failing.
package models
