package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matsen/rxnpath/internal/graph"
	"github.com/matsen/rxnpath/internal/viz"
	"github.com/spf13/cobra"
)

var (
	vizOutput string
	vizLayout string
	vizAll    bool
)

func init() {
	vizCmd.Flags().StringVarP(&vizOutput, "output", "o", "", "Output file path (default: stdout)")
	vizCmd.Flags().StringVar(&vizLayout, "layout", "", "Layout: chain, circle, or grid (default from config)")
	vizCmd.Flags().BoolVar(&vizAll, "all", false, "Draw the whole reaction network with the path highlighted")
	rootCmd.AddCommand(vizCmd)
}

var vizCmd = &cobra.Command{
	Use:   "viz <start> <end>",
	Short: "Generate a conversion path diagram",
	Long: `Generate an interactive HTML diagram of the shortest conversion path.

Compounds are drawn as circles joined by arrows labeled with the reaction type.
The start compound is outlined in green and the end compound in red.

With --all, every compound and reaction is drawn and the path is highlighted.
A missing path is then not an error: the network is drawn without a highlight.

Examples:
  # Generate HTML to stdout
  rxnpath viz CH4 CO2 > path.html

  # Whole network, circular layout
  rxnpath viz CH4 CO2 --all --layout circle -o network.html`,
	Args: cobra.ExactArgs(2),
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	g := mustBuildGraph()

	path, err := g.FindPath(args[0], args[1])
	if err != nil && !(vizAll && errors.Is(err, graph.ErrPathNotFound)) {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	var data *viz.GraphData
	if vizAll {
		data = viz.FromNetwork(g, path)
	} else {
		data = viz.FromPath(path)
	}

	opts := viz.HTMLOptions{
		Layout: cfg.Layout,
		Title:  fmt.Sprintf("%s to %s", args[0], args[1]),
	}
	if vizLayout != "" {
		opts.Layout = vizLayout
	}

	html, err := viz.GenerateHTML(data, opts)
	if err != nil {
		exitWithError(ExitError, "generating HTML: %v", err)
	}

	if vizOutput == "" {
		fmt.Print(html)
		return nil
	}

	if err := os.WriteFile(vizOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if humanOutput {
		outputHuman("Diagram written to %s\n", vizOutput)
		return nil
	}
	return outputJSON(StatusResponse{Status: "written", Path: vizOutput})
}
