package viz

import (
	"strings"

	"github.com/matsen/rxnpath/internal/graph"
	"github.com/matsen/rxnpath/internal/reaction"
)

// FormatLines renders one "<from> -> <label> -> <to>" line per step. A path
// with no steps renders as the empty string.
func FormatLines(path *graph.Path) string {
	var sb strings.Builder
	for _, s := range path.Steps {
		sb.WriteString(reaction.FormatLine(reaction.Reaction{Reactant: s.From, Type: s.Label, Product: s.To}))
		sb.WriteString("\n")
	}
	return sb.String()
}
