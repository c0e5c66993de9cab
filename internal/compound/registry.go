// Package compound assigns stable integer identities to compound names.
package compound

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when registering a new name would exceed the
// registry's configured limit.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// Registry maps compound names to dense, zero-based indices in order of first
// registration. Names are never removed.
type Registry struct {
	names []string
	index map[string]int
	limit int // 0 means no limit
}

// NewRegistry creates an empty registry. A limit of 0 lets the registry grow
// without bound.
func NewRegistry(limit int) *Registry {
	return &Registry{
		index: make(map[string]int),
		limit: limit,
	}
}

// Register returns the index for name, assigning the next index if the name
// has not been seen before. Registering a known name is a no-op.
func (r *Registry) Register(name string) (int, error) {
	if i, ok := r.index[name]; ok {
		return i, nil
	}
	if r.limit > 0 && len(r.names) >= r.limit {
		return -1, fmt.Errorf("registering compound %q: %w (limit %d)", name, ErrCapacityExceeded, r.limit)
	}

	i := len(r.names)
	r.names = append(r.names, name)
	r.index[name] = i
	return i, nil
}

// Lookup returns the index for name. Matching is exact and case-sensitive.
func (r *Registry) Lookup(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Name returns the compound name registered at index i.
func (r *Registry) Name(i int) (string, bool) {
	if i < 0 || i >= len(r.names) {
		return "", false
	}
	return r.names[i], true
}

// Len returns the number of registered compounds.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns a copy of all registered names in index order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
