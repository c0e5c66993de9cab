// Package reaction defines reaction triples and the ordered reaction catalog.
package reaction

import (
	"errors"
	"sort"
)

// Reaction is a single-step transformation from a reactant to a product.
type Reaction struct {
	Reactant string `json:"reactant"`
	Type     string `json:"type"`
	Product  string `json:"product"`
}

// Validation errors.
var (
	ErrEmptyReactant = errors.New("reactant is required")
	ErrEmptyType     = errors.New("reaction type is required")
	ErrEmptyProduct  = errors.New("product is required")
)

// Validate checks that all three fields are present.
func (r *Reaction) Validate() error {
	if r.Reactant == "" {
		return ErrEmptyReactant
	}
	if r.Type == "" {
		return ErrEmptyType
	}
	if r.Product == "" {
		return ErrEmptyProduct
	}
	return nil
}

// Pair returns the (reactant, product) identity used for label lookup.
func (r *Reaction) Pair() Pair {
	return Pair{Reactant: r.Reactant, Product: r.Product}
}

// Pair identifies a directed reactant -> product conversion.
type Pair struct {
	Reactant string `json:"reactant"`
	Product  string `json:"product"`
}

// Conflict describes a reactant -> product pair that appears more than once in
// a catalog. Labels are listed in first-seen order; Labels[0] is the one used
// when resolving a path.
type Conflict struct {
	Pair
	Labels []string `json:"labels"`
	Count  int      `json:"count"`
}

// Contradictory reports whether the repeated entries disagree on the label.
func (c Conflict) Contradictory() bool {
	return len(c.Labels) > 1
}

// FindConflicts finds reactant -> product pairs that appear more than once.
// Results are ordered by the position of each pair's first occurrence.
func FindConflicts(reactions []Reaction) []Conflict {
	firstSeen := make(map[Pair]int)
	byPair := make(map[Pair]*Conflict)

	for i, r := range reactions {
		p := r.Pair()
		c, ok := byPair[p]
		if !ok {
			firstSeen[p] = i
			byPair[p] = &Conflict{Pair: p, Labels: []string{r.Type}, Count: 1}
			continue
		}
		c.Count++
		if !containsString(c.Labels, r.Type) {
			c.Labels = append(c.Labels, r.Type)
		}
	}

	var conflicts []Conflict
	for _, c := range byPair {
		if c.Count > 1 {
			conflicts = append(conflicts, *c)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return firstSeen[conflicts[i].Pair] < firstSeen[conflicts[j].Pair]
	})
	return conflicts
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
