package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/rxnpath/internal/graph"
	"github.com/matsen/rxnpath/internal/reaction"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchJobs int

func init() {
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "Concurrent searches (default from config)")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Run many path searches against one graph",
	Long: `Run one path search per input line against a single reaction graph.

Each line names a start and an end compound, either as "START END" or as
"START -> END". Blank lines and lines starting with # are ignored.
Input is read from stdin when no file or "-" is given.

Results are reported in input order; a failed search does not stop the batch.

Examples:
  rxnpath batch queries.txt
  printf 'CH4 CO2\nCH3OH -> HCOOH\n' | rxnpath batch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

// BatchQuery is one parsed input line.
type BatchQuery struct {
	Line  int
	Start string
	End   string
}

// BatchResult is the outcome of one query.
type BatchResult struct {
	Line      int          `json:"line"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Found     bool         `json:"found"`
	Length    int          `json:"length,omitempty"`
	Compounds []string     `json:"compounds,omitempty"`
	Steps     []graph.Step `json:"steps,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// BatchResponse is the response for the batch command.
type BatchResponse struct {
	Queries int           `json:"queries"`
	Found   int           `json:"found"`
	Failed  int           `json:"failed"`
	Results []BatchResult `json:"results"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			exitWithError(ExitError, "opening queries: %v", err)
		}
		defer f.Close()
		in = f
	}

	queries, malformed, err := readBatchQueries(in)
	if err != nil {
		exitWithError(ExitError, "reading queries: %v", err)
	}

	jobs := cfg.Jobs
	if batchJobs > 0 {
		jobs = batchJobs
	}

	g := mustBuildGraph()
	results, err := runQueries(cmd.Context(), g, queries, jobs)
	if err != nil {
		exitWithError(ExitError, "running queries: %v", err)
	}
	results = mergeMalformed(results, malformed)

	resp := BatchResponse{Queries: len(results), Results: results}
	for _, r := range results {
		if r.Found {
			resp.Found++
		} else {
			resp.Failed++
		}
	}

	if humanOutput {
		printBatchHuman(resp)
		return nil
	}
	return outputJSON(resp)
}

// parseBatchLine splits a query line into start and end compound names.
func parseBatchLine(line string) (start, end string, ok bool) {
	if before, after, found := strings.Cut(line, reaction.Separator); found {
		start = strings.TrimSpace(before)
		end = strings.TrimSpace(after)
		if start == "" || end == "" || strings.Contains(end, reaction.Separator) {
			return "", "", false
		}
		return start, end, true
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// readBatchQueries parses every non-blank, non-comment line. Lines that do
// not parse are returned as failed results.
func readBatchQueries(r io.Reader) ([]BatchQuery, []BatchResult, error) {
	var queries []BatchQuery
	var malformed []BatchResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), reaction.MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		start, end, ok := parseBatchLine(line)
		if !ok {
			malformed = append(malformed, BatchResult{
				Line:  lineNum,
				Error: fmt.Sprintf("malformed query %q", line),
			})
			continue
		}
		queries = append(queries, BatchQuery{Line: lineNum, Start: start, End: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return queries, malformed, nil
}

// runQueries searches every query with at most jobs searches in flight.
// Results are returned in query order.
func runQueries(ctx context.Context, g *graph.Graph, queries []BatchQuery, jobs int) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, q := range queries {
		i, q := i, q // per-iteration copies (go 1.21 loop semantics)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = searchQuery(g, q)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func searchQuery(g *graph.Graph, q BatchQuery) BatchResult {
	result := BatchResult{Line: q.Line, Start: q.Start, End: q.End}
	path, err := g.FindPath(q.Start, q.End)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Found = true
	result.Length = path.Len()
	result.Compounds = path.Compounds
	result.Steps = path.Steps
	return result
}

// mergeMalformed interleaves malformed-line results with search results by
// line number. Both inputs are already sorted by line.
func mergeMalformed(results, malformed []BatchResult) []BatchResult {
	if len(malformed) == 0 {
		return results
	}
	merged := make([]BatchResult, 0, len(results)+len(malformed))
	i, j := 0, 0
	for i < len(results) || j < len(malformed) {
		if j == len(malformed) || (i < len(results) && results[i].Line < malformed[j].Line) {
			merged = append(merged, results[i])
			i++
		} else {
			merged = append(merged, malformed[j])
			j++
		}
	}
	return merged
}

func printBatchHuman(resp BatchResponse) {
	for _, r := range resp.Results {
		switch {
		case r.Found:
			outputHuman("%4d  %s %s\n", r.Line, formatPathHuman(&graph.Path{Compounds: r.Compounds, Steps: r.Steps}),
				mutedStyle.Render("("+pluralize(r.Length, "step")+")"))
		default:
			outputHuman("%4d  %s\n", r.Line, errorStyle.Render(r.Error))
		}
	}
	outputHuman("\n%s found, %d failed\n", pluralize(resp.Found, "path"), resp.Failed)
}
