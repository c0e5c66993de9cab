package graph

import (
	"fmt"
	"strings"
)

// UnknownLabel is used for a step whose pair has no catalog entry.
const UnknownLabel = "Unknown"

// Step is one reaction in a conversion path.
type Step struct {
	From  string `json:"from"`
	Label string `json:"label"`
	To    string `json:"to"`
}

// Path is an ordered conversion from a start compound to an end compound.
// It always holds at least one compound; len(Steps) == len(Compounds)-1.
type Path struct {
	Indices   []int    `json:"-"`
	Compounds []string `json:"compounds"`
	Steps     []Step   `json:"steps"`
}

// Start returns the first compound of the path.
func (p *Path) Start() string {
	return p.Compounds[0]
}

// End returns the last compound of the path.
func (p *Path) End() string {
	return p.Compounds[len(p.Compounds)-1]
}

// Len returns the number of reaction steps.
func (p *Path) Len() int {
	return len(p.Steps)
}

// String renders the path as a single arrow chain, e.g. "A -[X]-> B".
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(p.Compounds[0])
	for _, s := range p.Steps {
		sb.WriteString(" -[")
		sb.WriteString(s.Label)
		sb.WriteString("]-> ")
		sb.WriteString(s.To)
	}
	return sb.String()
}

// Reconstruct walks pred backwards from end to start and labels each step with
// the first matching catalog reaction, or UnknownLabel if none matches. A chain
// that breaks or loops before reaching start is reported as an
// ErrInvariantViolation rather than returned as a partial path.
func (g *Graph) Reconstruct(pred Predecessors, start, end int) (*Path, error) {
	n := g.registry.Len()
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%w: path endpoints %d -> %d outside registry of %d compounds",
			ErrInvariantViolation, start, end, n)
	}

	walk := []int{end}
	for cur := end; cur != start; {
		if cur >= len(pred) || pred[cur] == NoPredecessor {
			return nil, fmt.Errorf("%w: predecessor chain broken at compound %d", ErrInvariantViolation, cur)
		}
		cur = pred[cur]
		if cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: predecessor %d outside registry", ErrInvariantViolation, cur)
		}
		if len(walk) >= n {
			return nil, fmt.Errorf("%w: predecessor chain from %d does not reach %d", ErrInvariantViolation, end, start)
		}
		walk = append(walk, cur)
	}

	path := &Path{
		Indices:   make([]int, len(walk)),
		Compounds: make([]string, len(walk)),
		Steps:     make([]Step, 0, len(walk)-1),
	}
	for i, idx := range walk {
		j := len(walk) - 1 - i
		path.Indices[j] = idx
		path.Compounds[j], _ = g.registry.Name(idx)
	}

	for i := 0; i+1 < len(path.Indices); i++ {
		label, ok := g.catalog.FindLabel(path.Indices[i], path.Indices[i+1], g.registry)
		if !ok {
			label = UnknownLabel
		}
		path.Steps = append(path.Steps, Step{
			From:  path.Compounds[i],
			Label: label,
			To:    path.Compounds[i+1],
		})
	}

	return path, nil
}
