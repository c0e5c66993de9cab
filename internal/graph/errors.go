package graph

import (
	"errors"
	"fmt"
)

// Search errors.
var (
	ErrCompoundNotFound   = errors.New("compound not found")
	ErrPathNotFound       = errors.New("no conversion path found")
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// Roles of the compounds named in a search.
const (
	RoleStart = "start"
	RoleEnd   = "end"
)

// CompoundNotFoundError reports a search compound missing from the registry.
type CompoundNotFoundError struct {
	Role string // RoleStart or RoleEnd
	Name string
}

func (e *CompoundNotFoundError) Error() string {
	return fmt.Sprintf("%s compound %q not found in the graph", e.Role, e.Name)
}

// Is makes errors.Is(err, ErrCompoundNotFound) match.
func (e *CompoundNotFoundError) Is(target error) bool {
	return target == ErrCompoundNotFound
}
