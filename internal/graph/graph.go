// Package graph builds the directed reaction graph over compound indices and
// finds minimum-step conversion paths through it.
//
// A Graph is immutable once Build returns. Searches only read it, so any
// number of them may run concurrently against the same Graph.
package graph

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/matsen/rxnpath/internal/compound"
	"github.com/matsen/rxnpath/internal/reaction"
)

// Limits bounds the size of a graph build. Zero values mean unbounded.
type Limits struct {
	MaxCompounds int
	MaxReactions int
}

// Graph is a directed, unweighted graph whose nodes are compound indices.
// Parallel reactions between the same pair collapse to one edge; labels live in
// the catalog and are resolved during reconstruction.
type Graph struct {
	registry *compound.Registry
	catalog  *reaction.Catalog

	// adj[u] holds the distinct successors of u in ascending order.
	adj [][]int

	edges    int
	searches atomic.Int64
}

// Build registers every reactant and product in the catalog and adds one edge
// per reaction. Products are registered before reactants, so index assignment
// follows the order compounds first appear in that role sequence.
func Build(catalog *reaction.Catalog, registry *compound.Registry) (*Graph, error) {
	g := &Graph{
		registry: registry,
		catalog:  catalog,
	}

	for i, r := range catalog.Reactions() {
		product, err := registry.Register(r.Product)
		if err != nil {
			return nil, fmt.Errorf("building graph at reaction %d: %w", i+1, err)
		}
		reactant, err := registry.Register(r.Reactant)
		if err != nil {
			return nil, fmt.Errorf("building graph at reaction %d: %w", i+1, err)
		}
		g.addEdge(reactant, product)
	}

	g.grow(registry.Len())
	return g, nil
}

// FromReactions builds a graph with a fresh registry and catalog scoped to this
// one build.
func FromReactions(reactions []reaction.Reaction, limits Limits) (*Graph, error) {
	catalog := reaction.NewCatalog(limits.MaxReactions)
	for _, r := range reactions {
		if err := catalog.Append(r); err != nil {
			return nil, err
		}
	}
	return Build(catalog, compound.NewRegistry(limits.MaxCompounds))
}

// grow extends the adjacency list so every registered index has a row.
func (g *Graph) grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}

// addEdge inserts v into u's successor list, keeping it sorted and unique.
func (g *Graph) addEdge(u, v int) {
	g.grow(max(u, v) + 1)

	row := g.adj[u]
	i := sort.SearchInts(row, v)
	if i < len(row) && row[i] == v {
		return
	}
	row = append(row, 0)
	copy(row[i+1:], row[i:])
	row[i] = v
	g.adj[u] = row
	g.edges++
}

// HasEdge reports whether some reaction converts compound u into compound v.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	row := g.adj[u]
	i := sort.SearchInts(row, v)
	return i < len(row) && row[i] == v
}

// Neighbors returns the successors of u in ascending index order. The returned
// slice must not be modified.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}

// Len returns the number of compounds in the graph.
func (g *Graph) Len() int {
	return len(g.adj)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Registry returns the compound registry the graph was built with.
func (g *Graph) Registry() *compound.Registry {
	return g.registry
}

// Catalog returns the reaction catalog the graph was built from.
func (g *Graph) Catalog() *reaction.Catalog {
	return g.catalog
}

// Searches returns how many breadth-first searches have run on this graph.
func (g *Graph) Searches() int64 {
	return g.searches.Load()
}
