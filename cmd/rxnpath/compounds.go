package main

import (
	"github.com/matsen/rxnpath/internal/graph"
	"github.com/spf13/cobra"
)

var compoundsFrom string

func init() {
	compoundsCmd.Flags().StringVar(&compoundsFrom, "from", "", "Also report the step distance from this compound")
	rootCmd.AddCommand(compoundsCmd)
}

var compoundsCmd = &cobra.Command{
	Use:   "compounds",
	Short: "List the compounds in the reaction graph",
	Long: `List every compound in the reaction graph in index order.

Indices follow the order compounds first appear in the catalog, product
before reactant on each line. Lower indices win ties between equally short
paths.

With --from, each reachable compound also reports its step distance.

Examples:
  rxnpath compounds
  rxnpath compounds --from CH4 --human`,
	Args: cobra.NoArgs,
	RunE: runCompounds,
}

// CompoundEntry is one compound in the registry.
type CompoundEntry struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Distance *int   `json:"distance,omitempty"`
}

func runCompounds(cmd *cobra.Command, args []string) error {
	g := mustBuildGraph()
	entries := compoundEntries(g)

	if compoundsFrom != "" {
		start, ok := g.Registry().Lookup(compoundsFrom)
		if !ok {
			exitWithError(ExitCompoundNotFound, "%v",
				&graph.CompoundNotFoundError{Role: graph.RoleStart, Name: compoundsFrom})
		}
		for i, d := range g.Distances(start) {
			if d >= 0 {
				entries[i].Distance = &d
			}
		}
	}

	if humanOutput {
		for _, e := range entries {
			switch {
			case e.Distance != nil:
				outputHuman("%4d  %-20s %s\n", e.Index, e.Name, labelStyle.Render(pluralize(*e.Distance, "step")))
			case compoundsFrom != "":
				outputHuman("%4d  %-20s %s\n", e.Index, e.Name, mutedStyle.Render("unreachable"))
			default:
				outputHuman("%4d  %s\n", e.Index, e.Name)
			}
		}
		return nil
	}
	return outputJSON(entries)
}

func compoundEntries(g *graph.Graph) []CompoundEntry {
	names := g.Registry().Names()
	entries := make([]CompoundEntry, len(names))
	for i, name := range names {
		entries[i] = CompoundEntry{Index: i, Name: name}
	}
	return entries
}
