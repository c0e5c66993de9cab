package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/rxnpath/internal/logger"
	"github.com/matsen/rxnpath/internal/reaction"
)

// Format identifies a catalog file encoding.
type Format string

// Supported catalog formats.
const (
	FormatText   Format = "text"
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

// ErrCatalogNotFound is returned when a catalog file does not exist and
// defaults are not allowed.
var ErrCatalogNotFound = errors.New("reaction catalog not found")

// DetectFormat chooses a format from the file extension. Unknown extensions
// are read as arrow text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return FormatJSONL
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatText
	}
}

// LoadOptions configures Load.
type LoadOptions struct {
	// AllowDefaults substitutes the built-in reactions when the file is missing.
	AllowDefaults bool
}

// LoadResult describes a loaded catalog.
type LoadResult struct {
	Path      string              `json:"path"`
	Format    Format              `json:"format"`
	Reactions []reaction.Reaction `json:"-"`
	Skipped   []int               `json:"skipped_lines,omitempty"`
	Defaulted bool                `json:"defaulted,omitempty"`
}

// Load reads the catalog at path in the format implied by its extension.
func Load(path string, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Path: path, Format: DetectFormat(path)}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("checking reactions file: %w", err)
		}
		if !opts.AllowDefaults {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		logger.Warn("reactions file not found, using default reactions", "path", path)
		result.Reactions = reaction.Defaults()
		result.Defaulted = true
		return result, nil
	}

	var err error
	switch result.Format {
	case FormatJSONL:
		result.Reactions, err = ReadAllReactions(path)
	case FormatSQLite:
		result.Reactions, err = readReactionsDB(path)
	default:
		var parsed *reaction.ParseResult
		parsed, err = ReadReactionsText(path)
		if parsed != nil {
			result.Reactions = parsed.Reactions
			result.Skipped = parsed.Skipped
		}
	}
	if err != nil {
		return nil, err
	}

	for _, line := range result.Skipped {
		logger.Debug("skipped malformed reaction line", "path", path, "line", line)
	}
	logger.Debug("loaded reaction catalog", "path", path, "format", result.Format,
		"reactions", len(result.Reactions), "skipped", len(result.Skipped))
	return result, nil
}

// Save writes reactions to path in the format implied by its extension,
// replacing any existing catalog.
func Save(path string, reactions []reaction.Reaction) error {
	switch DetectFormat(path) {
	case FormatJSONL:
		return WriteAllReactions(path, reactions)
	case FormatSQLite:
		db, err := OpenDB(path)
		if err != nil {
			return err
		}
		defer db.Close()
		_, err = db.RebuildReactions(reactions)
		return err
	default:
		return WriteReactionsText(path, reactions)
	}
}

// Append adds r at the end of the catalog at path in the format implied by its
// extension, creating the catalog if it does not exist.
func Append(path string, r reaction.Reaction) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid reaction: %w", err)
	}

	switch DetectFormat(path) {
	case FormatJSONL:
		return AppendReaction(path, r)
	case FormatSQLite:
		db, err := OpenDB(path)
		if err != nil {
			return err
		}
		defer db.Close()
		n, err := db.InsertReaction(r)
		if err != nil {
			return err
		}
		logger.Debug("appended reaction", "path", path, "reactions", n)
		return nil
	default:
		return AppendReactionText(path, r)
	}
}

// ReadReactionsText reads an arrow-format catalog, skipping malformed lines.
func ReadReactionsText(path string) (*reaction.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reactions file: %w", err)
	}
	defer f.Close()

	return reaction.Parse(f)
}

// WriteReactionsText writes an arrow-format catalog, replacing existing content.
// Reactions that cannot be written as a single line are rejected before the
// file is touched.
func WriteReactionsText(path string, reactions []reaction.Reaction) error {
	if err := reaction.CheckLines(reactions); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating reactions file: %w", err)
	}
	defer f.Close()

	return reaction.Write(f, reactions)
}

// AppendReactionText appends one arrow-format line, first terminating a last
// line that lacks a newline.
func AppendReactionText(path string, r reaction.Reaction) error {
	if err := r.CheckLine(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening reactions file for append: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("checking reactions file: %w", err)
	}
	line := reaction.FormatLine(r) + "\n"
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("reading reactions file: %w", err)
		}
		if last[0] != '\n' {
			line = "\n" + line
		}
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing reaction: %w", err)
	}
	return nil
}

// readReactionsDB reads every reaction from an existing SQLite catalog.
func readReactionsDB(path string) ([]reaction.Reaction, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.AllReactions()
}

// FilterByCompound returns the reactions in which name is the reactant or the
// product, preserving order.
func FilterByCompound(reactions []reaction.Reaction, name string) []reaction.Reaction {
	var out []reaction.Reaction
	for _, r := range reactions {
		if r.Reactant == name || r.Product == name {
			out = append(out, r)
		}
	}
	return out
}
