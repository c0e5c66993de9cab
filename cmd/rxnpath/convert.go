package main

import (
	"path/filepath"

	"github.com/matsen/rxnpath/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a reaction catalog between formats",
	Long: `Re-encode a reaction catalog, choosing formats by file extension:

  .jsonl               one JSON object per line
  .db, .sqlite, .sqlite3  SQLite database
  anything else        "<reactant> -> <type> -> <product>" lines

Catalog order is preserved. Malformed text lines are dropped and reported.
An existing output catalog is replaced.

Examples:
  rxnpath convert reactions.txt reactions.jsonl
  rxnpath convert reactions.jsonl reactions.db`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

// ConvertResponse is the response for the convert command.
type ConvertResponse struct {
	Input        string         `json:"input"`
	InputFormat  storage.Format `json:"input_format"`
	Output       string         `json:"output"`
	OutputFormat storage.Format `json:"output_format"`
	Reactions    int            `json:"reactions"`
	SkippedLines []int          `json:"skipped_lines,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	if filepath.Clean(in) == filepath.Clean(out) {
		exitWithError(ExitError, "input and output are the same file: %s", in)
	}

	res, err := storage.Load(in, storage.LoadOptions{})
	if err != nil {
		exitWithError(loadExitCode(err), "loading %s: %v", in, err)
	}
	if err := storage.Save(out, res.Reactions); err != nil {
		exitWithError(ExitError, "writing %s: %v", out, err)
	}

	resp := ConvertResponse{
		Input:        in,
		InputFormat:  res.Format,
		Output:       out,
		OutputFormat: storage.DetectFormat(out),
		Reactions:    len(res.Reactions),
		SkippedLines: res.Skipped,
	}

	if humanOutput {
		outputHuman("Converted %s from %s (%s) to %s (%s)\n", pluralize(resp.Reactions, "reaction"),
			in, resp.InputFormat, out, resp.OutputFormat)
		if len(resp.SkippedLines) > 0 {
			outputHuman("%s\n", mutedStyle.Render("skipped "+pluralize(len(resp.SkippedLines), "malformed line")))
		}
		return nil
	}
	return outputJSON(resp)
}
