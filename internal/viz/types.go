// Package viz renders conversion paths as text and as interactive HTML
// diagrams. It consumes path data read-only and performs no graph logic.
package viz

// Node roles.
const (
	RoleStart        = "start"
	RoleEnd          = "end"
	RoleIntermediate = "intermediate"
	RoleOffPath      = "compound"
)

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a compound in the diagram.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Role  string `json:"role"`

	// Position along the path, or -1 for compounds off the path
	Position int  `json:"position"`
	OnPath   bool `json:"onPath"`
}

// Edge represents a reaction between two compounds.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	OnPath bool   `json:"onPath"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}
