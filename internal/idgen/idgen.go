// Package idgen generates unique identifiers for new expense records.
package idgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh random identifier. When the platform's secure
// random source is unavailable it degrades to a timestamp-derived id
// instead of failing the whole add; ids from the fallback are still
// unique enough for a single-user collection.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("exp-%d", time.Now().UnixNano())
	}
	return id.String()
}
