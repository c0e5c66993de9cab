package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/matsen/rxnpath/internal/compound"
	"github.com/matsen/rxnpath/internal/graph"
	"github.com/matsen/rxnpath/internal/storage"
)

// Styles for human-readable output.
var (
	colorStart = lipgloss.Color("#27AE60")
	colorEnd   = lipgloss.Color("#E74C3C")
	colorLabel = lipgloss.Color("#1D9EA3")
	colorMuted = lipgloss.Color("#7F8C8D")

	titleStyle = lipgloss.NewStyle().Bold(true)
	startStyle = lipgloss.NewStyle().Bold(true).Foreground(colorStart)
	endStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorEnd)
	labelStyle = lipgloss.NewStyle().Foreground(colorLabel)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorEnd)
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("error:"), msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps a search or build error to its exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrCompoundNotFound):
		return ExitCompoundNotFound
	case errors.Is(err, graph.ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, compound.ErrCapacityExceeded):
		return ExitDataError
	case errors.Is(err, storage.ErrCatalogNotFound):
		return ExitConfigError
	default:
		return ExitError
	}
}

// loadExitCode maps a catalog load error to its exit code. Anything other
// than a missing file is a problem with the file's contents.
func loadExitCode(err error) int {
	if errors.Is(err, storage.ErrCatalogNotFound) {
		return ExitConfigError
	}
	return ExitDataError
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// PathResponse is a found conversion path.
type PathResponse struct {
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Length    int          `json:"length"`
	Compounds []string     `json:"compounds"`
	Steps     []graph.Step `json:"steps"`
}

func newPathResponse(p *graph.Path) PathResponse {
	return PathResponse{
		Start:     p.Start(),
		End:       p.End(),
		Length:    p.Len(),
		Compounds: p.Compounds,
		Steps:     p.Steps,
	}
}

// formatPathHuman renders a path as a styled chain, e.g.
// "CH4 --Oxidation--> CH3OH --Oxidation--> HCHO".
func formatPathHuman(p *graph.Path) string {
	out := startStyle.Render(p.Start())
	for i, s := range p.Steps {
		to := s.To
		if i == len(p.Steps)-1 {
			to = endStyle.Render(to)
		}
		out += " --" + labelStyle.Render(s.Label) + "--> " + to
	}
	return out
}

// pluralize returns word with an "s" appended unless n is 1.
func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
