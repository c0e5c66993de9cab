package reaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Separator splits the three fields of a reaction line.
const Separator = "->"

// MaxLineCapacity is the maximum buffer size for a single reaction line.
const MaxLineCapacity = 1024 * 1024

// ErrUnsafeField is returned when a field cannot be written on a reaction line
// and read back unchanged.
var ErrUnsafeField = errors.New("field cannot be written as a reaction line")

// ParseResult holds the reactions read from a source along with the line
// numbers that were skipped as malformed. Blank lines are not recorded.
type ParseResult struct {
	Reactions []Reaction
	Skipped   []int
}

// ParseLine parses a line of the form "<reactant> -> <type> -> <product>".
// Surrounding whitespace on each field is ignored. It returns false for lines
// without two separators or with an empty field.
func ParseLine(line string) (Reaction, bool) {
	pos1 := strings.Index(line, Separator)
	if pos1 < 0 {
		return Reaction{}, false
	}
	rest := line[pos1+len(Separator):]
	pos2 := strings.Index(rest, Separator)
	if pos2 < 0 {
		return Reaction{}, false
	}

	r := Reaction{
		Reactant: trimField(line[:pos1]),
		Type:     trimField(rest[:pos2]),
		Product:  trimField(rest[pos2+len(Separator):]),
	}
	if r.Validate() != nil {
		return Reaction{}, false
	}
	return r, true
}

// Normalize trims surrounding whitespace from every field, as ParseLine does.
func (r *Reaction) Normalize() {
	r.Reactant = trimField(r.Reactant)
	r.Type = trimField(r.Type)
	r.Product = trimField(r.Product)
}

// CheckLine reports whether r round-trips through FormatLine and ParseLine.
func (r *Reaction) CheckLine() error {
	for _, field := range []string{r.Reactant, r.Type, r.Product} {
		if strings.Contains(field, Separator) || strings.ContainsAny(field, "\r\n") || field != trimField(field) {
			return fmt.Errorf("%w: %q", ErrUnsafeField, field)
		}
	}
	return r.Validate()
}

// CheckLines runs CheckLine on every reaction, naming the first failure by its
// 1-based position.
func CheckLines(reactions []Reaction) error {
	for i := range reactions {
		if err := reactions[i].CheckLine(); err != nil {
			return fmt.Errorf("reaction %d: %w", i+1, err)
		}
	}
	return nil
}

// trimField strips spaces and tabs, plus the carriage return left by CRLF files.
func trimField(s string) string {
	return strings.Trim(s, " \t\r")
}

// Parse reads reaction lines from r. Blank and malformed lines are skipped and
// recorded; only read failures are returned as errors.
func Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}
	scanner := bufio.NewScanner(r)

	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rx, ok := ParseLine(line)
		if !ok {
			result.Skipped = append(result.Skipped, lineNum)
			continue
		}
		result.Reactions = append(result.Reactions, rx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading reactions at line %d: %w", lineNum+1, err)
	}
	return result, nil
}

// FormatLine renders a reaction in the line format accepted by ParseLine.
func FormatLine(r Reaction) string {
	return r.Reactant + " " + Separator + " " + r.Type + " " + Separator + " " + r.Product
}

// Write writes reactions to w in the line format, one per line. Nothing is
// written if any reaction fails CheckLine.
func Write(w io.Writer, reactions []Reaction) error {
	if err := CheckLines(reactions); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, r := range reactions {
		if _, err := bw.WriteString(FormatLine(r) + "\n"); err != nil {
			return fmt.Errorf("writing reaction %d: %w", i, err)
		}
	}
	return bw.Flush()
}
