package main

import (
	"strings"

	"github.com/matsen/rxnpath/internal/reaction"
	"github.com/matsen/rxnpath/internal/storage"
	"github.com/spf13/cobra"
)

var reactionsCompound string

func init() {
	reactionsListCmd.Flags().StringVar(&reactionsCompound, "compound", "", "Only reactions where this compound is reactant or product")
	reactionsCmd.AddCommand(reactionsListCmd)
	reactionsCmd.AddCommand(reactionsCheckCmd)
	reactionsCmd.AddCommand(reactionsAddCmd)
	rootCmd.AddCommand(reactionsCmd)
}

var reactionsCmd = &cobra.Command{
	Use:   "reactions",
	Short: "Inspect the reaction catalog",
}

var reactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog reactions in order",
	Long: `List the reactions of the catalog in catalog order.

Examples:
  rxnpath reactions list
  rxnpath reactions list --compound HCHO --human`,
	Args: cobra.NoArgs,
	RunE: runReactionsList,
}

var reactionsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report repeated and conflicting reactions",
	Long: `Check the catalog for reactant -> product pairs listed more than once.

A pair listed with different reaction types is a conflict: paths always use
the first type in catalog order. Malformed lines skipped while reading are
reported too.`,
	Args: cobra.NoArgs,
	RunE: runReactionsCheck,
}

var reactionsAddCmd = &cobra.Command{
	Use:   "add <reactant> <type> <product>",
	Short: "Append a reaction to the catalog",
	Long: `Append a reaction to the end of the configured catalog file, creating it if needed.

The reaction lands after every existing entry, so it never changes which
label an existing reactant -> product pair resolves to.

Examples:
  rxnpath reactions add CO2 Reduction CO
  rxnpath reactions add "formic acid" Decomposition CO2 --reactions catalog.db`,
	Args: cobra.ExactArgs(3),
	RunE: runReactionsAdd,
}

// ReactionsListResponse is the response for reactions list.
type ReactionsListResponse struct {
	Source    *storage.LoadResult `json:"source"`
	Count     int                 `json:"count"`
	Reactions []reaction.Reaction `json:"reactions"`
}

// ReactionsCheckResponse is the response for reactions check.
type ReactionsCheckResponse struct {
	Status       string              `json:"status"`
	Reactions    int                 `json:"reactions"`
	SkippedLines []int               `json:"skipped_lines,omitempty"`
	Duplicates   []reaction.Conflict `json:"duplicates,omitempty"`
	Conflicts    []reaction.Conflict `json:"conflicts,omitempty"`
}

func runReactionsList(cmd *cobra.Command, args []string) error {
	res := mustLoadCatalog()

	reactions := res.Reactions
	if reactionsCompound != "" {
		reactions = storage.FilterByCompound(reactions, reactionsCompound)
	}
	if reactions == nil {
		reactions = []reaction.Reaction{}
	}

	if humanOutput {
		for _, r := range reactions {
			outputHuman("%s\n", reaction.FormatLine(r))
		}
		return nil
	}
	return outputJSON(ReactionsListResponse{Source: res, Count: len(reactions), Reactions: reactions})
}

func runReactionsAdd(cmd *cobra.Command, args []string) error {
	r := reaction.Reaction{
		Reactant: strings.TrimSpace(args[0]),
		Type:     strings.TrimSpace(args[1]),
		Product:  strings.TrimSpace(args[2]),
	}
	if err := storage.Append(cfg.ReactionsPath, r); err != nil {
		exitWithError(ExitDataError, "adding reaction: %v", err)
	}

	if humanOutput {
		outputHuman("Added %s to %s\n", reaction.FormatLine(r), cfg.ReactionsPath)
		return nil
	}
	return outputJSON(StatusResponse{Status: "added", Path: cfg.ReactionsPath})
}

func runReactionsCheck(cmd *cobra.Command, args []string) error {
	res := mustLoadCatalog()
	resp := checkReactions(res)

	if humanOutput {
		printCheckHuman(res, resp)
		return nil
	}
	return outputJSON(resp)
}

// checkReactions splits repeated pairs into harmless duplicates and
// conflicting labels.
func checkReactions(res *storage.LoadResult) ReactionsCheckResponse {
	resp := ReactionsCheckResponse{
		Status:       "ok",
		Reactions:    len(res.Reactions),
		SkippedLines: res.Skipped,
	}
	for _, c := range reaction.FindConflicts(res.Reactions) {
		if c.Contradictory() {
			resp.Conflicts = append(resp.Conflicts, c)
		} else {
			resp.Duplicates = append(resp.Duplicates, c)
		}
	}
	if len(resp.Conflicts) > 0 || len(resp.SkippedLines) > 0 {
		resp.Status = "issues"
	}
	return resp
}

func printCheckHuman(res *storage.LoadResult, resp ReactionsCheckResponse) {
	outputHuman("%s (%s, %s)\n", titleStyle.Render(res.Path), res.Format, pluralize(resp.Reactions, "reaction"))
	if res.Defaulted {
		outputHuman("%s\n", mutedStyle.Render("file not found, built-in reactions used"))
	}

	for _, line := range resp.SkippedLines {
		outputHuman("  line %d: %s\n", line, errorStyle.Render("malformed, skipped"))
	}
	for _, c := range resp.Conflicts {
		outputHuman("  %s -> %s: %s (using %s)\n", c.Reactant, c.Product,
			errorStyle.Render(strings.Join(c.Labels, ", ")), labelStyle.Render(c.Labels[0]))
	}
	for _, c := range resp.Duplicates {
		outputHuman("  %s -> %s: %s\n", c.Reactant, c.Product,
			mutedStyle.Render("listed "+pluralize(c.Count, "time")))
	}

	if resp.Status == "ok" {
		outputHuman("\nNo issues found.\n")
	}
}
