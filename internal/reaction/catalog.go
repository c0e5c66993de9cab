package reaction

import (
	"fmt"

	"github.com/matsen/rxnpath/internal/compound"
)

// ErrCapacityExceeded is the same sentinel the compound registry uses, so a
// single errors.Is check covers both limits.
var ErrCapacityExceeded = compound.ErrCapacityExceeded

// NameResolver maps compound indices back to names.
type NameResolver interface {
	Name(index int) (string, bool)
}

// Catalog is the ordered list of reactions exactly as supplied. Duplicates and
// contradictory entries are kept; order decides which label wins.
type Catalog struct {
	reactions []Reaction
	limit     int // 0 means no limit
}

// NewCatalog creates an empty catalog. A limit of 0 lets it grow without bound.
func NewCatalog(limit int) *Catalog {
	return &Catalog{limit: limit}
}

// Append adds a reaction at the end of the catalog. Reactant and product are
// not checked against any registry.
func (c *Catalog) Append(r Reaction) error {
	if c.limit > 0 && len(c.reactions) >= c.limit {
		return fmt.Errorf("appending reaction %s -> %s -> %s: %w (limit %d)",
			r.Reactant, r.Type, r.Product, ErrCapacityExceeded, c.limit)
	}
	c.reactions = append(c.reactions, r)
	return nil
}

// FindLabel returns the type of the first reaction, in insertion order, whose
// reactant and product resolve to the given indices.
func (c *Catalog) FindLabel(reactant, product int, names NameResolver) (string, bool) {
	reactantName, ok := names.Name(reactant)
	if !ok {
		return "", false
	}
	productName, ok := names.Name(product)
	if !ok {
		return "", false
	}

	for _, r := range c.reactions {
		if r.Reactant == reactantName && r.Product == productName {
			return r.Type, true
		}
	}
	return "", false
}

// Reactions returns a copy of the catalog in insertion order.
func (c *Catalog) Reactions() []Reaction {
	out := make([]Reaction, len(c.reactions))
	copy(out, c.reactions)
	return out
}

// Len returns the number of reactions in the catalog.
func (c *Catalog) Len() int {
	return len(c.reactions)
}

// FindConflicts reports repeated reactant -> product pairs in this catalog.
func (c *Catalog) FindConflicts() []Conflict {
	return FindConflicts(c.reactions)
}
