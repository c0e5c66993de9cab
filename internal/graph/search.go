package graph

// NoPredecessor marks the search origin and compounds the search never reached.
const NoPredecessor = -1

// Predecessors maps each compound index to the index it was first reached
// from during one search. It is only meaningful for the search that produced it.
type Predecessors []int

// Reached reports whether i was reached by the search that started at start.
func (p Predecessors) Reached(i, start int) bool {
	if i < 0 || i >= len(p) {
		return false
	}
	return i == start || p[i] != NoPredecessor
}

// BFS runs a breadth-first search from start and returns the predecessor of
// every reached compound. Neighbors are expanded in ascending index order, so
// ties between equally short paths always resolve the same way. The search
// stops as soon as end is dequeued; pass NoPredecessor as end to explore
// everything reachable.
func (g *Graph) BFS(start, end int) Predecessors {
	g.searches.Add(1)

	n := len(g.adj)
	pred := make(Predecessors, n)
	for i := range pred {
		pred[i] = NoPredecessor
	}
	if start < 0 || start >= n {
		return pred
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, start)
	visited[start] = true

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == end {
			break
		}
		for _, next := range g.adj[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			pred[next] = current
			queue = append(queue, next)
		}
	}

	return pred
}

// Distances returns the hop count from start to every compound, or -1 for
// compounds that cannot be reached.
func (g *Graph) Distances(start int) []int {
	pred := g.BFS(start, NoPredecessor)
	dist := make([]int, len(pred))
	for i := range dist {
		dist[i] = -1
	}
	if start < 0 || start >= len(pred) {
		return dist
	}

	for i := range pred {
		if !pred.Reached(i, start) {
			continue
		}
		d := 0
		for cur := i; cur != start; cur = pred[cur] {
			d++
		}
		dist[i] = d
	}
	return dist
}

// FindPath resolves both names and returns the minimum-step conversion path
// between them. Unknown names fail with a *CompoundNotFoundError before any
// search runs.
func (g *Graph) FindPath(startName, endName string) (*Path, error) {
	start, ok := g.registry.Lookup(startName)
	if !ok {
		return nil, &CompoundNotFoundError{Role: RoleStart, Name: startName}
	}
	end, ok := g.registry.Lookup(endName)
	if !ok {
		return nil, &CompoundNotFoundError{Role: RoleEnd, Name: endName}
	}

	if start == end {
		return g.Reconstruct(nil, start, end)
	}

	pred := g.BFS(start, end)
	if !pred.Reached(end, start) {
		return nil, ErrPathNotFound
	}
	return g.Reconstruct(pred, start, end)
}
