package collision

import (
	"fmt"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/hash"
)

// Tracker registers column names by their xxHash64 id and rejects duplicates.
//
// Frames key their column index by id, so two distinct names sharing an id
// must be refused rather than silently aliased.
type Tracker struct {
	names map[uint64]string // id → name
	order []string          // insertion order
}

// NewTracker creates a tracker sized for n columns.
func NewTracker(n int) *Tracker {
	return &Tracker{
		names: make(map[uint64]string, n),
		order: make([]string, 0, n),
	}
}

// Track registers name and returns its id.
//
// Returns:
//   - errs.ErrInvalidColumnName if name is empty
//   - errs.ErrDuplicateColumn if name was already tracked
//   - errs.ErrHashCollision if a different name already owns the same id
func (t *Tracker) Track(name string) (uint64, error) {
	if name == "" {
		return 0, errs.ErrInvalidColumnName
	}

	id := hash.ID(name)
	if existing, ok := t.names[id]; ok {
		if existing == name {
			return 0, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, name)
		}

		return 0, fmt.Errorf("%w: %q and %q", errs.ErrHashCollision, existing, name)
	}

	t.names[id] = name
	t.order = append(t.order, name)

	return id, nil
}

// Lookup returns the name registered under id.
func (t *Tracker) Lookup(id uint64) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked names while keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	t.order = t.order[:0]
}
