package main

import (
	"github.com/matsen/rxnpath/internal/viz"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <start> <end>",
	Short: "Find the shortest conversion path between two compounds",
	Long: `Find the fewest-step sequence of reactions converting one compound into another.

When several shortest paths exist, the one through lower-indexed compounds wins.
Each step is labeled with the first catalog reaction for that pair.

Examples:
  rxnpath find CH4 CO2
  rxnpath find CH4 CO2 --human
  rxnpath find CH4 CO2 --reactions catalog.jsonl`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	g := mustBuildGraph()

	path, err := g.FindPath(args[0], args[1])
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		outputHuman("%s %s\n\n", titleStyle.Render(formatPathHuman(path)),
			mutedStyle.Render("("+pluralize(path.Len(), "step")+")"))
		outputHuman("%s", viz.FormatLines(path))
		return nil
	}
	return outputJSON(newPathResponse(path))
}
