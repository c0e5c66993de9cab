// Package main provides the rxnpath CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/rxnpath/internal/config"
	"github.com/matsen/rxnpath/internal/graph"
	"github.com/matsen/rxnpath/internal/logger"
	"github.com/matsen/rxnpath/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool

	reactionsFlag string
	verboseFlag   bool

	// cfg is the effective configuration, set before any command runs
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rxnpath",
	Short: "Find the shortest reaction path between two compounds",
	Long: `rxnpath finds the fewest-step conversion from one chemical compound to
another, given a catalog of reactions.

Each catalog line has the form:
  <reactant> -> <reaction type> -> <product>

Catalogs may also be stored as JSONL (.jsonl) or SQLite (.db, .sqlite).
When no catalog is configured and reactions.txt is missing, a built-in
methane oxidation chain is used.

All commands output JSON by default; use --human for readable output.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&reactionsFlag, "reactions", "", "Reaction catalog file (default from config, then reactions.txt)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}

// setup initializes logging and loads the effective configuration.
func setup(cmd *cobra.Command, args []string) error {
	logger.Init(os.Stderr, logger.Options{Verbose: verboseFlag, Timestamps: verboseFlag})

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "err", err)
	}

	loaded, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if cmd.Flags().Changed("reactions") {
		loaded.SetReactionsPath(config.ExpandTilde(reactionsFlag))
	}
	cfg = loaded
	return nil
}

// mustLoadCatalog reads the configured reaction catalog, exits on error.
func mustLoadCatalog() *storage.LoadResult {
	res, err := storage.Load(cfg.ReactionsPath, storage.LoadOptions{
		AllowDefaults: cfg.UsesDefaultReactions(),
	})
	if err != nil {
		exitWithError(loadExitCode(err), "loading reactions: %v", err)
	}
	return res
}

// mustBuildGraph loads the catalog and builds the reaction graph, exits on error.
func mustBuildGraph() *graph.Graph {
	res := mustLoadCatalog()
	g, err := graph.FromReactions(res.Reactions, graph.Limits{
		MaxCompounds: cfg.MaxCompounds,
		MaxReactions: cfg.MaxReactions,
	})
	if err != nil {
		exitWithError(exitCodeFor(err), "building graph: %v", err)
	}
	logger.Debug("built reaction graph", "compounds", g.Len(), "edges", g.EdgeCount())
	return g
}
