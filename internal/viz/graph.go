package viz

import (
	"fmt"

	"github.com/matsen/rxnpath/internal/graph"
)

// nodeID returns the element ID for a compound index. Names are not used as
// IDs because they may contain arbitrary characters.
func nodeID(index int) string {
	return fmt.Sprintf("c%d", index)
}

// roleAt returns the role of the compound at position i of a path of n compounds.
func roleAt(i, n int) string {
	switch {
	case i == 0:
		return RoleStart
	case i == n-1:
		return RoleEnd
	default:
		return RoleIntermediate
	}
}

// FromPath builds diagram data containing only the compounds and reactions on
// the path, in path order.
func FromPath(path *graph.Path) *GraphData {
	if path == nil {
		return &GraphData{}
	}

	n := len(path.Compounds)
	data := &GraphData{
		Nodes: make([]Node, 0, n),
		Edges: make([]Edge, 0, len(path.Steps)),
	}

	for i, name := range path.Compounds {
		data.Nodes = append(data.Nodes, Node{
			ID:       nodeID(path.Indices[i]),
			Label:    name,
			Role:     roleAt(i, n),
			Position: i,
			OnPath:   true,
		})
	}
	for i, s := range path.Steps {
		data.Edges = append(data.Edges, Edge{
			Source: nodeID(path.Indices[i]),
			Target: nodeID(path.Indices[i+1]),
			Label:  s.Label,
			OnPath: true,
		})
	}
	return data
}

// FromNetwork builds diagram data for every compound and distinct reaction
// edge in g, flagging the elements that lie on path. path may be nil.
func FromNetwork(g *graph.Graph, path *graph.Path) *GraphData {
	position := make(map[int]int)
	onPathEdge := make(map[[2]int]bool)
	if path != nil {
		for i, idx := range path.Indices {
			position[idx] = i
			if i > 0 {
				onPathEdge[[2]int{path.Indices[i-1], idx}] = true
			}
		}
	}

	reg := g.Registry()
	data := &GraphData{
		Nodes: make([]Node, 0, g.Len()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	for u := 0; u < g.Len(); u++ {
		name, _ := reg.Name(u)
		node := Node{
			ID:       nodeID(u),
			Label:    name,
			Role:     RoleOffPath,
			Position: -1,
		}
		if i, ok := position[u]; ok {
			node.Role = roleAt(i, len(path.Indices))
			node.Position = i
			node.OnPath = true
		}
		data.Nodes = append(data.Nodes, node)

		for _, v := range g.Neighbors(u) {
			label, ok := g.Catalog().FindLabel(u, v, reg)
			if !ok {
				label = graph.UnknownLabel
			}
			data.Edges = append(data.Edges, Edge{
				Source: nodeID(u),
				Target: nodeID(v),
				Label:  label,
				OnPath: onPathEdge[[2]int{u, v}],
			})
		}
	}
	return data
}
