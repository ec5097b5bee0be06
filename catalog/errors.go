package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every LookupError.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateID = errors.New("duplicate record id")

	// Reasons an entry is excluded while the catalog is built.
	ErrNoYear      = errors.New("entry has no resolvable year")
	ErrTooOld      = errors.New("entry is older than the minimum year")
	ErrBlacklisted = errors.New("entry carries a blacklisted tag")
)

// LookupError reports an identifier with no record behind it, usually a stale
// reference kept from an earlier filtered collection.
type LookupError struct {
	ID int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("record %d not found", e.ID)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}
