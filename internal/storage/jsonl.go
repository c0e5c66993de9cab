// Package storage reads and writes reaction catalogs in arrow-text, JSONL and
// SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matsen/rxnpath/internal/reaction"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAllReactions reads all reactions from a JSONL file in file order.
// Fields are trimmed the same way as arrow-format lines.
// Returns an error if any line fails to parse or validate (fail-fast).
func ReadAllReactions(path string) ([]reaction.Reaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reactions file: %w", err)
	}
	defer f.Close()

	var reactions []reaction.Reaction
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var r reaction.Reaction
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		r.Normalize()
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid reaction at line %d: %w", lineNum, err)
		}
		reactions = append(reactions, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reactions file: %w", err)
	}

	return reactions, nil
}

// writeReactionJSONL marshals a reaction to JSON and writes it as a JSONL line.
func writeReactionJSONL(w io.Writer, r reaction.Reaction) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding reaction: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing reaction: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}
	return nil
}

// AppendReaction adds a reaction to the end of a JSONL file.
func AppendReaction(path string, r reaction.Reaction) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening reactions file for append: %w", err)
	}
	defer f.Close()

	return writeReactionJSONL(f, r)
}

// WriteAllReactions writes all reactions to a JSONL file, replacing existing content.
func WriteAllReactions(path string, reactions []reaction.Reaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating reactions file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range reactions {
		if err := writeReactionJSONL(w, r); err != nil {
			return err
		}
	}
	return w.Flush()
}
